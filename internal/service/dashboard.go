// internal/service/dashboard.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"golang.org/x/sync/errgroup"
)

// trendDays is the length of the revenue trend window.
const trendDays = 30

type DashboardService struct {
	users        repository.UserRepositoryIface
	companies    repository.CompanyRepositoryIface
	mentors      repository.MentorRepositoryIface
	internships  repository.InternshipRepositoryIface
	applications repository.ApplicationRepositoryIface
	bookings     repository.BookingRepositoryIface
	legal        repository.LegalRepositoryIface
	training     repository.TrainingRepositoryIface
	marketing    repository.MarketingRepositoryIface
}

func NewDashboardService(
	users repository.UserRepositoryIface,
	companies repository.CompanyRepositoryIface,
	mentors repository.MentorRepositoryIface,
	internships repository.InternshipRepositoryIface,
	applications repository.ApplicationRepositoryIface,
	bookings repository.BookingRepositoryIface,
	legal repository.LegalRepositoryIface,
	training repository.TrainingRepositoryIface,
	marketing repository.MarketingRepositoryIface,
) *DashboardService {
	return &DashboardService{
		users:        users,
		companies:    companies,
		mentors:      mentors,
		internships:  internships,
		applications: applications,
		bookings:     bookings,
		legal:        legal,
		training:     training,
		marketing:    marketing,
	}
}

type RevenueBreakdown struct {
	Bookings     int64 `json:"bookings"`
	Legal        int64 `json:"legal"`
	Certificates int64 `json:"certificates"`
	Total        int64 `json:"total"`
}

type TrendPoint struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
}

type ActivityItem struct {
	Kind      string    `json:"kind"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardSummary struct {
	Users        int64 `json:"users"`
	Companies    int64 `json:"companies"`
	Mentors      int64 `json:"mentors"`
	Internships  int64 `json:"internships"`
	Applications int64 `json:"applications"`
	Bookings     int64 `json:"bookings"`
	Submissions  int64 `json:"submissions"`
	Enrollments  int64 `json:"enrollments"`

	Revenue        RevenueBreakdown `json:"revenue"`
	RevenueTrend   []TrendPoint     `json:"revenue_trend"`
	RecentActivity []ActivityItem   `json:"recent_activity"`
}

// Summary aggregates the platform counters, the three revenue sources, a
// zero-filled 30-day trend, and a merged recent-activity feed. Queries fan
// out concurrently; the first failure cancels the rest.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}
	since := time.Now().AddDate(0, 0, -(trendDays - 1)).Truncate(24 * time.Hour)

	var (
		bookingsByDay, legalByDay, certsByDay map[string]int64
		recentUsers                           []*model.User
		recentApplications                    []*model.Application
		recentBookings                        []*model.MentorBooking
		recentSubmissions                     []*model.LegalSubmission
		recentBankLeads                       []*model.BankLead
		recentWebDevLeads                     []*model.WebDevelopmentLead
	)

	g, ctx := errgroup.WithContext(ctx)

	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(ctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&summary.Users, s.users.CountAll)
	count(&summary.Companies, s.companies.CountAll)
	count(&summary.Mentors, s.mentors.CountAll)
	count(&summary.Internships, s.internships.CountAll)
	count(&summary.Applications, s.applications.CountAll)
	count(&summary.Bookings, s.bookings.CountAll)
	count(&summary.Submissions, s.legal.CountSubmissions)
	count(&summary.Enrollments, s.training.CountEnrollments)

	count(&summary.Revenue.Bookings, s.bookings.SumRevenue)
	count(&summary.Revenue.Legal, s.legal.SumRevenue)
	count(&summary.Revenue.Certificates, s.training.SumCertificateRevenue)

	g.Go(func() error {
		var err error
		bookingsByDay, err = s.bookings.RevenueByDay(ctx, since)
		return err
	})
	g.Go(func() error {
		var err error
		legalByDay, err = s.legal.RevenueByDay(ctx, since)
		return err
	})
	g.Go(func() error {
		var err error
		certsByDay, err = s.training.CertificateRevenueByDay(ctx, since)
		return err
	})

	g.Go(func() error {
		var err error
		recentUsers, err = s.users.FindRecent(ctx, 5)
		return err
	})
	g.Go(func() error {
		var err error
		recentApplications, err = s.applications.FindRecent(ctx, 5)
		return err
	})
	g.Go(func() error {
		var err error
		recentBookings, err = s.bookings.FindRecent(ctx, 5)
		return err
	})
	g.Go(func() error {
		var err error
		recentSubmissions, err = s.legal.FindRecentSubmissions(ctx, 5)
		return err
	})
	g.Go(func() error {
		var err error
		recentBankLeads, err = s.marketing.FindRecentBankLeads(ctx, 5)
		return err
	})
	g.Go(func() error {
		var err error
		recentWebDevLeads, err = s.marketing.FindRecentWebDevLeads(ctx, 5)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.Revenue.Total = summary.Revenue.Bookings + summary.Revenue.Legal + summary.Revenue.Certificates
	summary.RevenueTrend = buildTrend(since, bookingsByDay, legalByDay, certsByDay)
	summary.RecentActivity = mergeActivity(
		recentUsers, recentApplications, recentBookings,
		recentSubmissions, recentBankLeads, recentWebDevLeads,
	)

	return summary, nil
}

// buildTrend zero-fills every day in the window so the chart has no gaps.
func buildTrend(since time.Time, sources ...map[string]int64) []TrendPoint {
	trend := make([]TrendPoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		day := since.AddDate(0, 0, i).Format("2006-01-02")
		var total int64
		for _, source := range sources {
			total += source[day]
		}
		trend = append(trend, TrendPoint{Date: day, Revenue: total})
	}
	return trend
}

func mergeActivity(
	users []*model.User,
	applications []*model.Application,
	bookings []*model.MentorBooking,
	submissions []*model.LegalSubmission,
	bankLeads []*model.BankLead,
	webDevLeads []*model.WebDevelopmentLead,
) []ActivityItem {
	var items []ActivityItem

	for _, u := range users {
		items = append(items, ActivityItem{Kind: "user_signup", Label: u.Username, CreatedAt: u.CreatedAt})
	}
	for _, a := range applications {
		items = append(items, ActivityItem{Kind: "application", Label: a.Internship.Title, CreatedAt: a.CreatedAt})
	}
	for _, b := range bookings {
		items = append(items, ActivityItem{Kind: "booking", Label: b.Mentor.Name, CreatedAt: b.CreatedAt})
	}
	for _, sub := range submissions {
		items = append(items, ActivityItem{Kind: "legal_submission", Label: sub.Service.Name, CreatedAt: sub.CreatedAt})
	}
	for _, l := range bankLeads {
		items = append(items, ActivityItem{Kind: "bank_lead", Label: l.Name, CreatedAt: l.CreatedAt})
	}
	for _, l := range webDevLeads {
		items = append(items, ActivityItem{Kind: "webdev_lead", Label: l.Name, CreatedAt: l.CreatedAt})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if len(items) > 20 {
		items = items[:20]
	}
	return items
}
