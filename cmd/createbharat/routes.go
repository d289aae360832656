// cmd/createbharat/routes.go
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/handler"
	"github.com/ajaypanchal761/createbharat-sub000/internal/middleware"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type routerDeps struct {
	logger       *slog.Logger
	tokenManager *auth.TokenManager
	principals   middleware.PrincipalResolver

	users        *handler.UserHandler
	companies    *handler.CompanyHandler
	mentors      *handler.MentorHandler
	cas          *handler.CAHandler
	admins       *handler.AdminHandler
	internships  *handler.InternshipHandler
	applications *handler.ApplicationHandler
	loans        *handler.LoanHandler
	bookings     *handler.BookingHandler
	legal        *handler.LegalHandler
	training     *handler.TrainingHandler
	marketing    *handler.MarketingHandler
}

func buildRouter(d routerDeps) http.Handler {
	requireUser := middleware.RequireActor(d.tokenManager, d.principals, auth.ActorUser)
	requireCompany := middleware.RequireActor(d.tokenManager, d.principals, auth.ActorCompany)
	requireMentor := middleware.RequireActor(d.tokenManager, d.principals, auth.ActorMentor)
	requireCA := middleware.RequireActor(d.tokenManager, d.principals, auth.ActorCA)
	requireAdmin := middleware.RequireActor(d.tokenManager, d.principals, auth.ActorAdmin)

	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(d.logger))
	r.Use(recoveryMiddleware(d.logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", d.users.Register)
			r.Post("/login", d.users.Login)
			r.Post("/otp/request", d.users.RequestOTP)
			r.Post("/otp/verify", d.users.VerifyOTP)

			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Get("/me", d.users.GetProfile)
				r.Put("/me", d.users.UpdateProfile)
				r.Delete("/me", d.users.Deactivate)
			})
		})

		r.Route("/companies", func(r chi.Router) {
			r.Post("/register", d.companies.Register)
			r.Post("/login", d.companies.Login)

			r.Group(func(r chi.Router) {
				r.Use(requireCompany)
				r.Get("/me", d.companies.GetProfile)
				r.Put("/me", d.companies.UpdateProfile)
				r.Post("/me/logo", d.companies.UploadLogo)
				r.Delete("/me", d.companies.Deactivate)

				// Applicant review, scoped to the owning company
				r.Put("/applications/{applicationID}/status", d.applications.UpdateStatus)
				r.Get("/applications/{applicationID}/resume", d.applications.DownloadResume)
			})
		})

		r.Route("/internships", func(r chi.Router) {
			r.Get("/", d.internships.List)

			r.Group(func(r chi.Router) {
				r.Use(requireCompany)
				r.Post("/", d.internships.Create)
				r.Get("/mine", d.internships.ListMine)
				r.Put("/{internshipID}", d.internships.Update)
				r.Post("/{internshipID}/close", d.internships.Close)
				r.Delete("/{internshipID}", d.internships.Delete)
				r.Get("/{internshipID}/applications", d.applications.ListForInternship)
			})

			r.Get("/{internshipID}", d.internships.Get)

			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/{internshipID}/applications", d.applications.Apply)
			})
		})

		r.Route("/applications", func(r chi.Router) {
			r.Use(requireUser)
			r.Get("/mine", d.applications.ListMine)
			r.Post("/{applicationID}/withdraw", d.applications.Withdraw)
			r.Get("/{applicationID}/resume", d.applications.DownloadResume)
		})

		r.Route("/loans", func(r chi.Router) {
			r.Get("/", d.loans.List)
			r.Get("/{schemeID}", d.loans.Get)
			r.Post("/{schemeID}/apply", d.loans.TrackApplication)
		})

		r.Route("/mentors", func(r chi.Router) {
			r.Post("/register", d.mentors.Register)
			r.Post("/login", d.mentors.Login)
			r.Get("/", d.mentors.List)

			r.Group(func(r chi.Router) {
				r.Use(requireMentor)
				r.Get("/me", d.mentors.GetProfile)
				r.Put("/me", d.mentors.UpdateProfile)
				r.Post("/me/avatar", d.mentors.UploadAvatar)
			})

			r.Get("/{mentorID}", d.mentors.Get)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/", d.bookings.Create)
				r.Get("/mine", d.bookings.ListMine)
				r.Post("/{bookingID}/payment/order", d.bookings.CreatePaymentOrder)
				r.Post("/{bookingID}/payment/confirm", d.bookings.ConfirmPayment)
				r.Post("/{bookingID}/cancel", d.bookings.Cancel)
				r.Post("/{bookingID}/review", d.bookings.Review)
			})

			r.Group(func(r chi.Router) {
				r.Use(requireMentor)
				r.Get("/assigned", d.bookings.ListForMentor)
				r.Post("/{bookingID}/respond", d.bookings.Respond)
				r.Post("/{bookingID}/complete", d.bookings.Complete)
			})
		})

		r.Route("/legal", func(r chi.Router) {
			r.Get("/services", d.legal.ListServices)
			r.Get("/services/{serviceID}", d.legal.GetService)

			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/services/{serviceID}/submissions", d.legal.Submit)
				r.Get("/submissions/mine", d.legal.ListMySubmissions)
				r.Get("/submissions/{submissionID}", d.legal.GetSubmission)
				r.Post("/submissions/{submissionID}/documents", d.legal.AttachDocument)
				r.Post("/submissions/{submissionID}/payment/order", d.legal.CreatePaymentOrder)
				r.Post("/submissions/{submissionID}/payment/confirm", d.legal.ConfirmPayment)
				r.Post("/submissions/{submissionID}/cancel", d.legal.CancelSubmission)
			})
		})

		r.Route("/ca", func(r chi.Router) {
			r.Post("/register", d.cas.Register)
			r.Post("/login", d.cas.Login)

			r.Group(func(r chi.Router) {
				r.Use(requireCA)
				r.Get("/me", d.cas.GetProfile)
				r.Put("/me", d.cas.UpdateProfile)

				r.Route("/services", func(r chi.Router) {
					r.Get("/", d.legal.ListAllServices)
					r.Post("/", d.legal.CreateService)
					r.Put("/{serviceID}", d.legal.UpdateService)
					r.Patch("/{serviceID}/active", d.legal.SetServiceActive)
					r.Delete("/{serviceID}", d.legal.DeleteService)
				})

				r.Route("/submissions", func(r chi.Router) {
					r.Get("/", d.legal.ListSubmissions)
					r.Get("/{submissionID}", d.legal.GetSubmission)
					r.Post("/{submissionID}/documents", d.legal.AttachDocument)
					r.Put("/{submissionID}/status", d.legal.UpdateSubmissionStatus)
				})
			})
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", d.training.ListCourses)

			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Get("/progress", d.training.ListProgress)
				r.Post("/{courseID}/enroll", d.training.Enroll)
				r.Get("/{courseID}/progress", d.training.GetProgress)
				r.Post("/{courseID}/topics/{topicID}/complete", d.training.CompleteTopic)
				r.Get("/{courseID}/topics/{topicID}/quiz", d.training.GetQuiz)
				r.Post("/{courseID}/quizzes/{quizID}/submit", d.training.SubmitQuiz)
				r.Post("/{courseID}/certificate/order", d.training.CreateCertificateOrder)
				r.Post("/{courseID}/certificate/confirm", d.training.ConfirmCertificatePayment)
			})

			r.Get("/{courseID}", d.training.GetCourse)
		})

		r.Route("/banners", func(r chi.Router) {
			r.Get("/", d.marketing.ListBanners)
		})

		r.Route("/leads", func(r chi.Router) {
			r.Post("/bank", d.marketing.SubmitBankLead)
			r.Post("/webdev", d.marketing.SubmitWebDevLead)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", d.admins.Login)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)

				r.Get("/me", d.admins.GetProfile)
				r.Get("/dashboard", d.admins.Dashboard)

				// Moderation
				r.Patch("/companies/{companyID}/blocked", d.admins.SetCompanyBlocked)
				r.Patch("/mentors/{mentorID}/blocked", d.admins.SetMentorBlocked)
				r.Patch("/bookings/{bookingID}/settled", d.bookings.MarkSettled)

				// Loan scheme catalog
				r.Route("/loans", func(r chi.Router) {
					r.Get("/", d.loans.ListAll)
					r.Post("/", d.loans.Create)
					r.Put("/{schemeID}", d.loans.Update)
					r.Patch("/{schemeID}/active", d.loans.SetActive)
					r.Delete("/{schemeID}", d.loans.Delete)
				})

				// Training catalog
				r.Route("/courses", func(r chi.Router) {
					r.Get("/", d.training.ListAllCourses)
					r.Post("/", d.training.CreateCourse)
					r.Put("/{courseID}", d.training.UpdateCourse)
					r.Patch("/{courseID}/published", d.training.SetCoursePublished)
					r.Delete("/{courseID}", d.training.DeleteCourse)
					r.Post("/{courseID}/modules", d.training.AddModule)
				})
				r.Route("/modules", func(r chi.Router) {
					r.Put("/{moduleID}", d.training.UpdateModule)
					r.Delete("/{moduleID}", d.training.DeleteModule)
					r.Post("/{moduleID}/topics", d.training.AddTopic)
				})
				r.Route("/topics", func(r chi.Router) {
					r.Put("/{topicID}", d.training.UpdateTopic)
					r.Delete("/{topicID}", d.training.DeleteTopic)
					r.Put("/{topicID}/quiz", d.training.SetQuiz)
				})

				// Marketing
				r.Route("/banners", func(r chi.Router) {
					r.Get("/", d.marketing.ListAllBanners)
					r.Post("/", d.marketing.CreateBanner)
					r.Patch("/{bannerID}/active", d.marketing.SetBannerActive)
					r.Delete("/{bannerID}", d.marketing.DeleteBanner)
				})
				r.Route("/leads", func(r chi.Router) {
					r.Get("/bank", d.marketing.ListBankLeads)
					r.Get("/webdev", d.marketing.ListWebDevLeads)
					r.Patch("/bank/{leadID}", d.marketing.UpdateBankLead)
					r.Patch("/webdev/{leadID}", d.marketing.UpdateWebDevLead)
				})

				// Admin account management, super admin only
				r.Route("/accounts", func(r chi.Router) {
					r.Use(middleware.RequireAdminRole(model.RoleSuperAdmin))
					r.Get("/", d.admins.List)
					r.Post("/", d.admins.Create)
					r.Put("/{adminID}", d.admins.Update)
					r.Delete("/{adminID}", d.admins.Delete)
					r.Post("/{adminID}/unlock", d.admins.Unlock)
				})
			})
		})
	})

	return r
}
