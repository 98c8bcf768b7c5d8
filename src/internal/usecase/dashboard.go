package usecase

import (
	"math"
	"sort"

	"donation-service/src/internal/entity"
	"donation-service/src/internal/model"

	"github.com/dustin/go-humanize"
)

const (
	SortByDate   = "date"
	SortByAmount = "amount"
	OrderAsc     = "asc"
	OrderDesc    = "desc"
)

// ComputeDashboardStats derives the admin aggregates from a user snapshot.
// Average and recurring percentage are 0 when there are no donations.
func ComputeDashboardStats(users []entity.User) model.DashboardStats {
	stats := model.DashboardStats{TotalUsers: len(users)}
	recurring := 0
	for _, u := range users {
		for _, d := range u.Donations {
			stats.TotalDonations++
			stats.TotalAmount += d.Amount
			if d.Recurring {
				recurring++
			}
		}
	}
	if stats.TotalDonations > 0 {
		stats.AverageDonation = stats.TotalAmount / float64(stats.TotalDonations)
		stats.RecurringPercentage = int(math.Round(float64(recurring) / float64(stats.TotalDonations) * 100))
	}
	stats.TotalAmountFormatted = FormatMoney(stats.TotalAmount)
	stats.AverageAmountFormatted = FormatMoney(stats.AverageDonation)
	return stats
}

// FormatMoney renders pesos with dot thousands and comma decimals.
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return "$ " + humanize.FormatFloat("#.###,##", v)
}

// ToggleSort resolves the donation table ordering after a column click.
// Clicking the active column flips the direction; a new column starts
// descending. An empty toggle keeps the current ordering.
func ToggleSort(field, order, toggle string) (string, string) {
	if field == "" {
		field = SortByDate
	}
	if order == "" {
		order = OrderDesc
	}
	switch {
	case toggle == "":
		return field, order
	case toggle == field && order == OrderDesc:
		return field, OrderAsc
	case toggle == field:
		return field, OrderDesc
	default:
		return toggle, OrderDesc
	}
}

// SortDonations returns a sorted copy; the input is left untouched.
func SortDonations(donations []entity.Donation, field, order string) []entity.Donation {
	out := append([]entity.Donation{}, donations...)
	less := func(i, j int) bool {
		if field == SortByAmount {
			return out[i].Amount < out[j].Amount
		}
		return out[i].Date.Before(out[j].Date)
	}
	if order == OrderDesc {
		sort.SliceStable(out, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(out, less)
	}
	return out
}
