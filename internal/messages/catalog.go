// README: User-facing message catalog; the built-in catalog carries the app's pt-BR strings.
package messages

// Catalog supplies every message a flow can surface to the user.
type Catalog interface {
	EmptyOrigin() string
	EmptyDestination() string
	EmptyUserID() string
	SameAddresses() string
	Unknown() string
	RideConfirmationFailed() string
	RideRequestFailed() string
	NoInternet() string
	InvalidData() string
	Server() string
	ContactSupport() string
	InvalidProvidedData() string
	DriverSelectionFailed() string
	InvalidMileage() string
	InvalidDriver() string
	NoRidesFound() string
	Unexpected() string
	FetchHistory() string
	NoRidesForDriver() string
	HistoryUserIDRequired() string
}

// Default returns the built-in pt-BR catalog.
func Default() Catalog {
	return ptBR{}
}

type ptBR struct{}

func (ptBR) EmptyOrigin() string {
	return "O endereço de origem não foi preenchido. Preencha o endereço e tente novamente."
}

func (ptBR) EmptyDestination() string {
	return "O endereço de destino não foi preenchido. Preencha o endereço e tente novamente."
}

func (ptBR) EmptyUserID() string {
	return "O ID de usuário não foi preenchido. Preencha o ID e tente novamente."
}

func (ptBR) SameAddresses() string {
	return "Os endereços de destino de origem e destino não podem ser iguais. Preencha os endereços corretamente e tente novamente."
}

func (ptBR) Unknown() string                { return "Ocorreu um erro desconhecido." }
func (ptBR) RideConfirmationFailed() string { return "Falha ao confirmar a viagem." }
func (ptBR) RideRequestFailed() string      { return "Falha ao solicitar a viagem." }
func (ptBR) NoInternet() string             { return "Sem conexão com a internet. Tente novamente." }
func (ptBR) InvalidData() string            { return "Dados inválidos. Corrija os dados e tente novamente." }
func (ptBR) Server() string                 { return "Um erro de servidor ocorreu. Tente novamente mais tarde." }

func (ptBR) ContactSupport() string {
	return "Um erro desconhecido ocorreu. Contate a Central de Atendimento."
}

func (ptBR) InvalidProvidedData() string { return "Os dados fornecidos são inválidos." }

func (ptBR) DriverSelectionFailed() string {
	return "Falha ao selecionar motorista. Selecione outro motorista disponível."
}

func (ptBR) InvalidMileage() string { return "Quilometragem inválida para o motorista selecionado." }
func (ptBR) InvalidDriver() string  { return "Motorista inválido. Corrija o nome e tente novamente." }

func (ptBR) NoRidesFound() string {
	return "Nenhuma corrida encontrada para o usuário e motorista selecionado."
}

func (ptBR) Unexpected() string {
	return "Um erro inesperado ocorreu. Reinicie o aplicativo e tente novamente."
}

func (ptBR) FetchHistory() string          { return "Erro ao buscar histórico de corridas" }

func (ptBR) NoRidesForDriver() string {
	return "Nenhuma corrida encontrada para o respectivo motorista."
}
func (ptBR) HistoryUserIDRequired() string { return "O campo ID de usuário deve ser preenchido." }
