package events

type ProfessionalCollectedEvent struct {
	RunID       string   `json:"run_id"`
	Name        string   `json:"nome"`
	Phone       string   `json:"telefone"`
	City        string   `json:"cidade"`
	State       string   `json:"estado"`
	Category    string   `json:"categoria"`
	Rating      *float64 `json:"avaliacao_nota"`
	Reviews     int      `json:"avaliacao_total"`
	Services    int      `json:"servicos_negociados"`
	Tenure      string   `json:"tempo_getninjas"`
	ProfileURL  string   `json:"url_perfil"`
	CollectedOn string   `json:"data_coleta"`
	Source      string   `json:"source"`
}
