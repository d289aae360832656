// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./company.go -destination=../mocks/mock_company_repository.go -package=mocks CompanyRepositoryIface
//go:generate mockgen -source=./mentor.go -destination=../mocks/mock_mentor_repository.go -package=mocks MentorRepositoryIface
//go:generate mockgen -source=./ca.go -destination=../mocks/mock_ca_repository.go -package=mocks CARepositoryIface
//go:generate mockgen -source=./admin.go -destination=../mocks/mock_admin_repository.go -package=mocks AdminRepositoryIface
//go:generate mockgen -source=./internship.go -destination=../mocks/mock_internship_repository.go -package=mocks InternshipRepositoryIface
//go:generate mockgen -source=./application.go -destination=../mocks/mock_application_repository.go -package=mocks ApplicationRepositoryIface
//go:generate mockgen -source=./loan.go -destination=../mocks/mock_loan_repository.go -package=mocks LoanSchemeRepositoryIface
//go:generate mockgen -source=./booking.go -destination=../mocks/mock_booking_repository.go -package=mocks BookingRepositoryIface
//go:generate mockgen -source=./legal.go -destination=../mocks/mock_legal_repository.go -package=mocks LegalRepositoryIface
//go:generate mockgen -source=./training.go -destination=../mocks/mock_training_repository.go -package=mocks TrainingRepositoryIface
//go:generate mockgen -source=./marketing.go -destination=../mocks/mock_marketing_repository.go -package=mocks MarketingRepositoryIface
//go:generate mockgen -source=../payment/razorpay.go -destination=../mocks/mock_payment_gateway.go -package=mocks Gateway
//go:generate mockgen -source=../storage/cloudinary.go -destination=../mocks/mock_media_store.go -package=mocks MediaStore
//go:generate mockgen -source=../storage/gridfs.go -destination=../mocks/mock_blob_store.go -package=mocks BlobStore
//go:generate mockgen -source=../sms/sms.go -destination=../mocks/mock_sms_sender.go -package=mocks -mock_names=Sender=MockSMSSender Sender
//go:generate mockgen -source=../email/service.go -destination=../mocks/mock_email_sender.go -package=mocks -mock_names=Sender=MockEmailSender Sender
