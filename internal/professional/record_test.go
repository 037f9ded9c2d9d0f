package professional_test

import (
	"errors"
	"testing"

	"github.com/JulianoL13/guincho-scraper/internal/professional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(19) 99876-5432", "19998765432"},
		{"+55 19 99876-5432", "19998765432"},
		{"55 11 3456-7890", "1134567890"},
		{"tel:+5511934567890", "11934567890"},
		{"3456-7890", ""},
		{"", ""},
		{"123456789012345", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, professional.NormalizePhone(tt.in))
		})
	}
}

func TestRecord_Field(t *testing.T) {
	rating := 4.5
	r := professional.Record{
		Name:     "Guincho Rápido",
		Phone:    "19998765432",
		Rating:   &rating,
		Reviews:  12,
		Services: 3,
	}

	assert.Equal(t, "Guincho Rápido", r.Field("nome"))
	assert.Equal(t, "19998765432", r.Field("telefone"))
	assert.Equal(t, "4.5", r.Field("avaliacao_nota"))
	assert.Equal(t, "12", r.Field("avaliacao_total"))
	assert.Equal(t, "3", r.Field("servicos_negociados"))
	assert.Empty(t, professional.Record{}.Field("avaliacao_nota"))
	assert.Empty(t, r.Field("unknown"))
}

func TestCheckRequired(t *testing.T) {
	t.Run("complete record passes", func(t *testing.T) {
		r := professional.Record{Name: "A", Phone: "1134567890"}
		assert.NoError(t, professional.CheckRequired(r, professional.DefaultRequiredFields))
	})

	t.Run("names the missing field", func(t *testing.T) {
		r := professional.Record{Name: "A", Phone: "  "}
		err := professional.CheckRequired(r, professional.DefaultRequiredFields)
		require.Error(t, err)

		var vErr *professional.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "telefone", vErr.Field)
		assert.Equal(t, "A", vErr.Name)
	})

	t.Run("custom required set", func(t *testing.T) {
		r := professional.Record{Name: "A", Phone: "1134567890"}
		err := professional.CheckRequired(r, []string{"nome", "cidade"})
		assert.Error(t, err)
	})
}

func TestMarshalRecords(t *testing.T) {
	t.Run("empty set renders as array", func(t *testing.T) {
		data, err := professional.MarshalRecords(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("keeps accents and ampersands unescaped", func(t *testing.T) {
		data, err := professional.MarshalRecords([]professional.Record{{Name: "Reboque & Cia São José"}})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"nome": "Reboque & Cia São José"`)
		assert.Contains(t, string(data), `"avaliacao_nota": null`)
	})
}

func TestFilter_Matches(t *testing.T) {
	r := professional.Record{City: "Campinas", State: "SP"}

	assert.True(t, professional.Filter{}.Matches(r))
	assert.True(t, professional.Filter{State: "sp"}.Matches(r))
	assert.True(t, professional.Filter{State: "SP", City: "campinas"}.Matches(r))
	assert.False(t, professional.Filter{State: "RJ"}.Matches(r))
	assert.False(t, professional.Filter{City: "Santos"}.Matches(r))
}

func TestRequiredFields(t *testing.T) {
	assert.Equal(t, professional.DefaultRequiredFields, professional.RequiredFields(nil))
	assert.Equal(t, []string{"nome", "telefone"}, professional.RequiredFields([]string{"nome"}))
	assert.Equal(t, []string{"telefone", "cidade"}, professional.RequiredFields([]string{"telefone", "cidade"}))

	in := []string{"cidade"}
	_ = professional.RequiredFields(in)
	assert.Equal(t, []string{"cidade"}, in, "input must not be modified")
}

func TestCheckFieldNames(t *testing.T) {
	assert.NoError(t, professional.CheckFieldNames([]string{"nome", "telefone", "data_coleta"}))

	err := professional.CheckFieldNames([]string{"nome", "phone"})
	assert.ErrorIs(t, err, professional.ErrUnknownField)
	assert.Contains(t, err.Error(), `"phone"`)
}
