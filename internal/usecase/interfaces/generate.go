package interfaces

//go:generate mockgen -source=invoice_renderer_interface.go -destination=mocks/invoice_renderer_mock.go -package=mock_interfaces
//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_mock.go -package=mock_interfaces
//go:generate mockgen -source=rental_gateway_interface.go -destination=mocks/rental_gateway_mock.go -package=mock_interfaces
//go:generate mockgen -source=session_repository_interface.go -destination=mocks/session_repository_mock.go -package=mock_interfaces
