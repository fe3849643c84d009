// Package analytics summarizes a list of call records for the dashboard.
package analytics

import (
	"math"
	"strings"

	"calldesk/internal/vapi"

	"github.com/shopspring/decimal"
)

const (
	DefaultLimit = 1000
	recentCount  = 10
)

type Summary struct {
	TotalCalls     int            `json:"totalCalls"`
	CompletedCalls int            `json:"completedCalls"`
	ActiveCalls    int            `json:"activeCalls"`
	FailedCalls    int            `json:"failedCalls"`
	AvgDuration    int64          `json:"avgDuration"`
	TotalCost      string         `json:"totalCost"`
	SuccessRate    string         `json:"successRate"`
	CallsByDate    map[string]int `json:"callsByDate"`
	RecentCalls    []vapi.Call    `json:"recentCalls"`
}

// Compute derives the dashboard summary from calls, which are expected in
// the platform's order (newest first).
//
// A call is completed when its status is "ended", active when it is
// "in-progress" and failed when its ended reason mentions "error".
// Average duration covers only calls with both start and end times and
// is rounded to whole seconds. Calls without a parseable creation time
// are left out of CallsByDate.
func Compute(calls []vapi.Call) Summary {
	s := Summary{
		TotalCalls:  len(calls),
		CallsByDate: make(map[string]int),
		RecentCalls: []vapi.Call{},
	}

	var (
		totalMillis int64
		timed       int
		cost        = decimal.Zero
	)
	for _, c := range calls {
		switch c.Status {
		case "ended":
			s.CompletedCalls++
		case "in-progress":
			s.ActiveCalls++
		}
		if strings.Contains(c.EndedReason, "error") {
			s.FailedCalls++
		}

		start, okStart := c.StartedTime()
		end, okEnd := c.EndedTime()
		if okStart && okEnd {
			totalMillis += end.Sub(start).Milliseconds()
			timed++
		}

		cost = cost.Add(decimal.NewFromFloat(c.Cost))

		if created, ok := c.CreatedTime(); ok {
			s.CallsByDate[created.UTC().Format("2006-01-02")]++
		}
	}

	if timed > 0 {
		s.AvgDuration = int64(math.Round(float64(totalMillis) / float64(timed) / 1000))
	}
	s.TotalCost = cost.StringFixed(2)

	s.SuccessRate = "0"
	if s.TotalCalls > 0 {
		s.SuccessRate = decimal.NewFromInt(int64(s.CompletedCalls)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(s.TotalCalls))).
			StringFixed(1)
	}

	n := min(len(calls), recentCount)
	s.RecentCalls = append(s.RecentCalls, calls[:n]...)
	return s
}
