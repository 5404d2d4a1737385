package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"bilantra/internal/core"
	"bilantra/internal/store"
)

// lenderRegion is one block of the directory, selected when the location
// contains any of the keys.
type lenderRegion struct {
	keys    []string
	lenders []Lender
}

var lenderDirectory = []lenderRegion{
	{
		keys: []string{"kenya", "nairobi"},
		lenders: []Lender{
			{Name: "KCB Bank", Match: 92, Rate: "12%", MaxAmount: "$5,000", ApprovalTime: "7 days"},
			{Name: "Equity Bank", Match: 89, Rate: "14%", MaxAmount: "$4,500", ApprovalTime: "10 days"},
			{Name: "NCBA Bank", Match: 85, Rate: "15%", MaxAmount: "$4,000", ApprovalTime: "5 days"},
			{Name: "Cooperative Bank", Match: 83, Rate: "13%", MaxAmount: "$3,500", ApprovalTime: "14 days"},
		},
	},
	{
		keys: []string{"nigeria", "lagos"},
		lenders: []Lender{
			{Name: "Zenith Bank", Match: 93, Rate: "16%", MaxAmount: "₦1,800,000", ApprovalTime: "9 days"},
			{Name: "Access Bank", Match: 90, Rate: "17%", MaxAmount: "₦1,500,000", ApprovalTime: "5 days"},
			{Name: "GTBank", Match: 87, Rate: "15%", MaxAmount: "₦1,350,000", ApprovalTime: "8 days"},
			{Name: "FirstBank", Match: 82, Rate: "16.5%", MaxAmount: "₦1,200,000", ApprovalTime: "12 days"},
		},
	},
	{
		keys: []string{"ghana", "accra"},
		lenders: []Lender{
			{Name: "Ecobank", Match: 91, Rate: "15%", MaxAmount: "₵30,000", ApprovalTime: "6 days"},
			{Name: "Fidelity Bank", Match: 88, Rate: "16%", MaxAmount: "₵25,000", ApprovalTime: "8 days"},
			{Name: "GCB Bank", Match: 86, Rate: "14%", MaxAmount: "₵28,000", ApprovalTime: "10 days"},
			{Name: "Stanbic Bank", Match: 83, Rate: "15.5%", MaxAmount: "₵22,000", ApprovalTime: "7 days"},
		},
	},
	{
		keys: []string{"south africa", "johannesburg"},
		lenders: []Lender{
			{Name: "Standard Bank", Match: 94, Rate: "11%", MaxAmount: "R80,000", ApprovalTime: "5 days"},
			{Name: "FNB", Match: 91, Rate: "12%", MaxAmount: "R75,000", ApprovalTime: "8 days"},
			{Name: "Absa", Match: 88, Rate: "12.5%", MaxAmount: "R70,000", ApprovalTime: "6 days"},
			{Name: "Nedbank", Match: 85, Rate: "13%", MaxAmount: "R65,000", ApprovalTime: "9 days"},
		},
	},
}

var defaultLenders = []Lender{
	{Name: "Global SME Bank", Match: 87, Rate: "14%", MaxAmount: "$4,000", ApprovalTime: "10 days"},
	{Name: "International Finance", Match: 85, Rate: "15%", MaxAmount: "$3,800", ApprovalTime: "12 days"},
	{Name: "Regional Trust", Match: 82, Rate: "13%", MaxAmount: "$3,500", ApprovalTime: "15 days"},
	{Name: "Local MicroCredit", Match: 80, Rate: "12%", MaxAmount: "$3,200", ApprovalTime: "8 days"},
}

// LendersFor returns the directory entries for a free-text location, best
// match first.
func LendersFor(location string) []Lender {
	loc := strings.ToLower(location)
	out := slices.Clone(defaultLenders)
	for _, r := range lenderDirectory {
		if slices.ContainsFunc(r.keys, func(k string) bool { return strings.Contains(loc, k) }) {
			out = slices.Clone(r.lenders)
			break
		}
	}
	slices.SortStableFunc(out, func(a, b Lender) int { return b.Match - a.Match })
	return out
}

func (s *appService) MatchLenders(ctx context.Context, email string, req LenderRequest) (*LenderResult, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: loan amount cannot be negative", core.ErrInvalidInput)
	}
	var out *LenderResult
	err := s.read(ctx, email, func(sess *store.Session) error {
		loc := strings.TrimSpace(req.Location)
		if loc == "" {
			loc = sess.Snapshot.Profile.City
		}
		out = &LenderResult{
			Location:  loc,
			Amount:    req.Amount,
			Purpose:   strings.TrimSpace(req.Purpose),
			LoanScore: s.score(sess.Snapshot).Score,
			Lenders:   LendersFor(loc),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
