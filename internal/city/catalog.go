package city

// catalog is ordered in five groups of twenty; selection windows depend on this order.
var catalog = [CatalogSize]Target{
	// group 1: greater São Paulo, Rio de Janeiro, Minas Gerais
	{"sao-paulo", "sp"},
	{"guarulhos", "sp"},
	{"sao-bernardo-do-campo", "sp"},
	{"santo-andre", "sp"},
	{"osasco", "sp"},
	{"sao-caetano-do-sul", "sp"},
	{"maua", "sp"},
	{"diadema", "sp"},
	{"barueri", "sp"},
	{"cotia", "sp"},
	{"rio-de-janeiro", "rj"},
	{"niteroi", "rj"},
	{"sao-goncalo", "rj"},
	{"duque-de-caxias", "rj"},
	{"nova-iguacu", "rj"},
	{"belo-horizonte", "mg"},
	{"contagem", "mg"},
	{"betim", "mg"},
	{"uberlandia", "mg"},
	{"juiz-de-fora", "mg"},

	// group 2: São Paulo countryside and the South
	{"campinas", "sp"},
	{"sao-jose-dos-campos", "sp"},
	{"ribeirao-preto", "sp"},
	{"sorocaba", "sp"},
	{"santos", "sp"},
	{"sao-jose-do-rio-preto", "sp"},
	{"piracicaba", "sp"},
	{"bauru", "sp"},
	{"jundiai", "sp"},
	{"franca", "sp"},
	{"curitiba", "pr"},
	{"londrina", "pr"},
	{"maringa", "pr"},
	{"ponta-grossa", "pr"},
	{"cascavel", "pr"},
	{"porto-alegre", "rs"},
	{"caxias-do-sul", "rs"},
	{"pelotas", "rs"},
	{"canoas", "rs"},
	{"santa-maria", "rs"},

	// group 3: Northeast
	{"salvador", "ba"},
	{"feira-de-santana", "ba"},
	{"vitoria-da-conquista", "ba"},
	{"camacari", "ba"},
	{"itabuna", "ba"},
	{"fortaleza", "ce"},
	{"caucaia", "ce"},
	{"juazeiro-do-norte", "ce"},
	{"maracanau", "ce"},
	{"sobral", "ce"},
	{"recife", "pe"},
	{"jaboatao-dos-guararapes", "pe"},
	{"olinda", "pe"},
	{"caruaru", "pe"},
	{"petrolina", "pe"},
	{"natal", "rn"},
	{"mossoro", "rn"},
	{"parnamirim", "rn"},
	{"sao-luis", "ma"},
	{"imperatriz", "ma"},

	// group 4: North and Center-West
	{"manaus", "am"},
	{"belem", "pa"},
	{"ananindeua", "pa"},
	{"santarem", "pa"},
	{"macapa", "ap"},
	{"palmas", "to"},
	{"araguaina", "to"},
	{"porto-velho", "ro"},
	{"rio-branco", "ac"},
	{"boa-vista", "rr"},
	{"brasilia", "df"},
	{"goiania", "go"},
	{"aparecida-de-goiania", "go"},
	{"anapolis", "go"},
	{"rio-verde", "go"},
	{"cuiaba", "mt"},
	{"varzea-grande", "mt"},
	{"rondonopolis", "mt"},
	{"campo-grande", "ms"},
	{"dourados", "ms"},

	// group 5: mid-sized complementary cities
	{"florianopolis", "sc"},
	{"joinville", "sc"},
	{"blumenau", "sc"},
	{"sao-jose", "sc"},
	{"criciuma", "sc"},
	{"vitoria", "es"},
	{"vila-velha", "es"},
	{"serra", "es"},
	{"cariacica", "es"},
	{"cachoeiro-de-itapemirim", "es"},
	{"maceio", "al"},
	{"aracaju", "se"},
	{"joao-pessoa", "pb"},
	{"campina-grande", "pb"},
	{"teresina", "pi"},
	{"parnaiba", "pi"},
	{"petropolis", "rj"},
	{"volta-redonda", "rj"},
	{"campos-dos-goytacazes", "rj"},
	{"marilia", "sp"},
}
