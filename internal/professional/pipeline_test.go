package professional_test

import (
	"testing"

	"github.com/JulianoL13/guincho-scraper/internal/professional"
	"github.com/stretchr/testify/assert"
)

func TestDedup(t *testing.T) {
	records := []professional.Record{
		{Name: "first", Phone: "1134567890"},
		{Name: "second", Phone: "19998765432"},
		{Name: "dup", Phone: "1134567890"},
		{Name: "no phone a"},
		{Name: "no phone b"},
	}

	out, removed := professional.Dedup(records)

	assert.Equal(t, 3, removed)
	assert.Len(t, out, 2)
	assert.Equal(t, "first", out[0].Name)
	assert.Equal(t, "second", out[1].Name)
}

func TestDedup_Empty(t *testing.T) {
	out, removed := professional.Dedup(nil)
	assert.Empty(t, out)
	assert.Zero(t, removed)
}

func TestValidate(t *testing.T) {
	records := []professional.Record{
		{Name: "ok", Phone: "1134567890"},
		{Name: "no phone"},
		{Phone: "19998765432"},
	}

	out, removed := professional.Validate(records, professional.DefaultRequiredFields)

	assert.Equal(t, 2, removed)
	assert.Equal(t, []professional.Record{{Name: "ok", Phone: "1134567890"}}, out)
}
