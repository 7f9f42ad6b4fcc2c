package server

// Server объединяет HTTP-серверы отдельных сущностей. Сейчас сущность одна: корзина.
type Server struct {
	BasketServer
}

func NewServer(
	basketServer BasketServer,
) Server {
	return Server{
		BasketServer: basketServer,
	}
}
