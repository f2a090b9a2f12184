package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Patients      *handlers.PatientsHandler
	Doctors       *handlers.DoctorsHandler
	Admin         *handlers.AdminHandler
	Appointments  *handlers.AppointmentsHandler
	Prescriptions *handlers.PrescriptionsHandler
	Payments      *handlers.PaymentsHandler
	Feedback      *handlers.FeedbackHandler
}

// RegisterRoutes wires HTTP routes. Access control is not re-declared here:
// the global policy middleware has already allowed or denied the request by
// path before any of these handlers run.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/api/login", cfg.Auth.Login)

	patients := app.Group("/api/patients")
	patients.Post("/register", cfg.Patients.Register)
	patients.Get("/fetchAllPatients", cfg.Patients.FetchAll)
	patients.Get("/details/:email", cfg.Patients.Details)
	patients.Get("/mydetails", cfg.Patients.MyDetails)
	patients.Put("/update/:email", cfg.Patients.Update)
	patients.Delete("/delete/:email", cfg.Patients.Delete)

	doctors := app.Group("/api/doctors")
	doctors.Post("/registerDoctor", cfg.Doctors.Register)
	doctors.Get("/fetchAllDoctors", cfg.Doctors.FetchAll)
	doctors.Get("/fetchAllDoctorNames", cfg.Doctors.FetchAllNames)
	doctors.Get("/details/:email", cfg.Doctors.Details)
	doctors.Get("/mydetails", cfg.Doctors.MyDetails)
	doctors.Put("/update/:email", cfg.Doctors.Update)
	doctors.Delete("/delete/:email", cfg.Doctors.Delete)

	doctor := app.Group("/api/doctor")
	doctor.Get("/appointments", cfg.Appointments.DoctorAppointments)
	doctor.Post("/issue-prescription", cfg.Prescriptions.Issue)

	admin := app.Group("/api/admin")
	admin.Get("/dashboard", cfg.Admin.Dashboard)
	admin.Get("/details", cfg.Admin.Details)

	appointments := app.Group("/api/appointments")
	appointments.Post("", cfg.Appointments.Book)
	appointments.Get("/my-appointments", cfg.Appointments.MyAppointments)
	appointments.Get("/all", cfg.Appointments.All)
	appointments.Put("/:id/status", cfg.Appointments.UpdateStatus)

	prescriptions := app.Group("/api/prescriptions")
	prescriptions.Get("/my-prescriptions", cfg.Prescriptions.MyPrescriptions)
	prescriptions.Post("/pay", cfg.Prescriptions.Pay)

	payments := app.Group("/api/payments")
	payments.Post("/create-order", cfg.Payments.CreateOrder)
	payments.Post("/verify", cfg.Payments.Verify)

	feedback := app.Group("/api/feedback")
	feedback.Post("", cfg.Feedback.Submit)
	feedback.Get("", cfg.Feedback.All)
}
