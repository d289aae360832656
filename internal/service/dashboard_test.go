package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/mocks"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type dashboardMocks struct {
	users        *mocks.MockUserRepositoryIface
	companies    *mocks.MockCompanyRepositoryIface
	mentors      *mocks.MockMentorRepositoryIface
	internships  *mocks.MockInternshipRepositoryIface
	applications *mocks.MockApplicationRepositoryIface
	bookings     *mocks.MockBookingRepositoryIface
	legal        *mocks.MockLegalRepositoryIface
	training     *mocks.MockTrainingRepositoryIface
	marketing    *mocks.MockMarketingRepositoryIface
}

func newDashboardService(ctrl *gomock.Controller) (*service.DashboardService, dashboardMocks) {
	m := dashboardMocks{
		users:        mocks.NewMockUserRepositoryIface(ctrl),
		companies:    mocks.NewMockCompanyRepositoryIface(ctrl),
		mentors:      mocks.NewMockMentorRepositoryIface(ctrl),
		internships:  mocks.NewMockInternshipRepositoryIface(ctrl),
		applications: mocks.NewMockApplicationRepositoryIface(ctrl),
		bookings:     mocks.NewMockBookingRepositoryIface(ctrl),
		legal:        mocks.NewMockLegalRepositoryIface(ctrl),
		training:     mocks.NewMockTrainingRepositoryIface(ctrl),
		marketing:    mocks.NewMockMarketingRepositoryIface(ctrl),
	}
	svc := service.NewDashboardService(
		m.users, m.companies, m.mentors, m.internships, m.applications,
		m.bookings, m.legal, m.training, m.marketing,
	)
	return svc, m
}

func (m dashboardMocks) expectCounters() {
	m.users.EXPECT().CountAll(gomock.Any()).Return(int64(120), nil)
	m.companies.EXPECT().CountAll(gomock.Any()).Return(int64(14), nil)
	m.mentors.EXPECT().CountAll(gomock.Any()).Return(int64(9), nil)
	m.internships.EXPECT().CountAll(gomock.Any()).Return(int64(31), nil)
	m.applications.EXPECT().CountAll(gomock.Any()).Return(int64(87), nil)
	m.bookings.EXPECT().CountAll(gomock.Any()).Return(int64(42), nil)
	m.legal.EXPECT().CountSubmissions(gomock.Any()).Return(int64(18), nil)
	m.training.EXPECT().CountEnrollments(gomock.Any()).Return(int64(56), nil)
}

func (m dashboardMocks) expectRecent() {
	m.users.EXPECT().FindRecent(gomock.Any(), 5).Return(nil, nil)
	m.applications.EXPECT().FindRecent(gomock.Any(), 5).Return(nil, nil)
	m.bookings.EXPECT().FindRecent(gomock.Any(), 5).Return(nil, nil)
	m.legal.EXPECT().FindRecentSubmissions(gomock.Any(), 5).Return(nil, nil)
	m.marketing.EXPECT().FindRecentBankLeads(gomock.Any(), 5).Return(nil, nil)
	m.marketing.EXPECT().FindRecentWebDevLeads(gomock.Any(), 5).Return(nil, nil)
}

func TestDashboardSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("sums revenue and zero-fills the trend window", func(t *testing.T) {
		svc, m := newDashboardService(ctrl)
		m.expectCounters()

		m.bookings.EXPECT().SumRevenue(gomock.Any()).Return(int64(150000), nil)
		m.legal.EXPECT().SumRevenue(gomock.Any()).Return(int64(250000), nil)
		m.training.EXPECT().SumCertificateRevenue(gomock.Any()).Return(int64(49900), nil)

		today := time.Now().Format("2006-01-02")
		m.bookings.EXPECT().RevenueByDay(gomock.Any(), gomock.Any()).Return(map[string]int64{today: 50000}, nil)
		m.legal.EXPECT().RevenueByDay(gomock.Any(), gomock.Any()).Return(map[string]int64{today: 25000}, nil)
		m.training.EXPECT().CertificateRevenueByDay(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.expectRecent()

		summary, err := svc.Summary(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(120), summary.Users)
		assert.Equal(t, int64(87), summary.Applications)
		assert.Equal(t, int64(449900), summary.Revenue.Total)
		assert.Len(t, summary.RevenueTrend, 30)
		var windowTotal int64
		for _, point := range summary.RevenueTrend {
			windowTotal += point.Revenue
			if point.Date == today {
				assert.Equal(t, int64(75000), point.Revenue)
			}
		}
		assert.Equal(t, int64(75000), windowTotal)
	})

	t.Run("merges activity newest first and caps the feed", func(t *testing.T) {
		svc, m := newDashboardService(ctrl)
		m.expectCounters()

		m.bookings.EXPECT().SumRevenue(gomock.Any()).Return(int64(0), nil)
		m.legal.EXPECT().SumRevenue(gomock.Any()).Return(int64(0), nil)
		m.training.EXPECT().SumCertificateRevenue(gomock.Any()).Return(int64(0), nil)
		m.bookings.EXPECT().RevenueByDay(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.legal.EXPECT().RevenueByDay(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.training.EXPECT().CertificateRevenueByDay(gomock.Any(), gomock.Any()).Return(nil, nil)

		now := time.Now()
		users := make([]*model.User, 5)
		for i := range users {
			users[i] = &model.User{Username: "user", CreatedAt: now.Add(-time.Duration(i) * time.Minute)}
		}
		applications := make([]*model.Application, 5)
		for i := range applications {
			applications[i] = &model.Application{
				Internship: model.Internship{Title: "Backend Intern"},
				CreatedAt:  now.Add(-time.Duration(i+10) * time.Minute),
			}
		}
		bookings := make([]*model.MentorBooking, 5)
		for i := range bookings {
			bookings[i] = &model.MentorBooking{
				Mentor:    model.Mentor{Name: "Mentor"},
				CreatedAt: now.Add(-time.Duration(i+20) * time.Minute),
			}
		}
		submissions := make([]*model.LegalSubmission, 5)
		for i := range submissions {
			submissions[i] = &model.LegalSubmission{
				Service:   model.LegalService{Name: "GST Registration"},
				CreatedAt: now.Add(-time.Duration(i+30) * time.Minute),
			}
		}
		leads := []*model.BankLead{{Name: "Fresh Lead", CreatedAt: now.Add(time.Minute)}}

		m.users.EXPECT().FindRecent(gomock.Any(), 5).Return(users, nil)
		m.applications.EXPECT().FindRecent(gomock.Any(), 5).Return(applications, nil)
		m.bookings.EXPECT().FindRecent(gomock.Any(), 5).Return(bookings, nil)
		m.legal.EXPECT().FindRecentSubmissions(gomock.Any(), 5).Return(submissions, nil)
		m.marketing.EXPECT().FindRecentBankLeads(gomock.Any(), 5).Return(leads, nil)
		m.marketing.EXPECT().FindRecentWebDevLeads(gomock.Any(), 5).Return(nil, nil)

		summary, err := svc.Summary(context.Background())

		assert.NoError(t, err)
		assert.Len(t, summary.RecentActivity, 20)
		assert.Equal(t, "bank_lead", summary.RecentActivity[0].Kind)
		for i := 1; i < len(summary.RecentActivity); i++ {
			assert.False(t, summary.RecentActivity[i].CreatedAt.After(summary.RecentActivity[i-1].CreatedAt))
		}
	})

	t.Run("a failing query fails the summary", func(t *testing.T) {
		svc, m := newDashboardService(ctrl)

		m.users.EXPECT().CountAll(gomock.Any()).Return(int64(0), errors.New("connection reset")).AnyTimes()
		m.companies.EXPECT().CountAll(gomock.Any()).Return(int64(0), nil).AnyTimes()
		m.mentors.EXPECT().CountAll(gomock.Any()).Return(int64(0), nil).AnyTimes()
		m.internships.EXPECT().CountAll(gomock.Any()).Return(int64(0), nil).AnyTimes()
		m.applications.EXPECT().CountAll(gomock.Any()).Return(int64(0), nil).AnyTimes()
		m.bookings.EXPECT().CountAll(gomock.Any()).Return(int64(0), nil).AnyTimes()
		m.legal.EXPECT().CountSubmissions(gomock.Any()).Return(int64(0), nil).AnyTimes()
		m.training.EXPECT().CountEnrollments(gomock.Any()).Return(int64(0), nil).AnyTimes()
		m.bookings.EXPECT().SumRevenue(gomock.Any()).Return(int64(0), nil).AnyTimes()
		m.legal.EXPECT().SumRevenue(gomock.Any()).Return(int64(0), nil).AnyTimes()
		m.training.EXPECT().SumCertificateRevenue(gomock.Any()).Return(int64(0), nil).AnyTimes()
		m.bookings.EXPECT().RevenueByDay(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.legal.EXPECT().RevenueByDay(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.training.EXPECT().CertificateRevenueByDay(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.users.EXPECT().FindRecent(gomock.Any(), 5).Return(nil, nil).AnyTimes()
		m.applications.EXPECT().FindRecent(gomock.Any(), 5).Return(nil, nil).AnyTimes()
		m.bookings.EXPECT().FindRecent(gomock.Any(), 5).Return(nil, nil).AnyTimes()
		m.legal.EXPECT().FindRecentSubmissions(gomock.Any(), 5).Return(nil, nil).AnyTimes()
		m.marketing.EXPECT().FindRecentBankLeads(gomock.Any(), 5).Return(nil, nil).AnyTimes()
		m.marketing.EXPECT().FindRecentWebDevLeads(gomock.Any(), 5).Return(nil, nil).AnyTimes()

		_, err := svc.Summary(context.Background())
		assert.Error(t, err)
	})
}
