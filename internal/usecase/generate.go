package usecase

//go:generate mockgen -source=booking_usecase.go -destination=../adapter/http/handlers/mocks/booking_usecase_mock.go -package=mocks
//go:generate mockgen -source=booking_workflow_usecase.go -destination=../adapter/http/handlers/mocks/booking_workflow_usecase_mock.go -package=mocks
//go:generate mockgen -source=dashboard_usecase.go -destination=../adapter/http/handlers/mocks/dashboard_usecase_mock.go -package=mocks
//go:generate mockgen -source=fleet_usecase.go -destination=../adapter/http/handlers/mocks/fleet_usecase_mock.go -package=mocks
//go:generate mockgen -source=invoice_usecase.go -destination=../adapter/http/handlers/mocks/invoice_usecase_mock.go -package=mocks
//go:generate mockgen -source=session_usecase.go -destination=../adapter/http/handlers/mocks/session_usecase_mock.go -package=mocks
