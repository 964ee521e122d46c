// Package report computes the full six-strategy analysis for a session and
// flattens it into labeled sections for rendering.
package report

import (
	"go.uber.org/zap"

	"github.com/dealscope/underwriter/internal/deal"
	"github.com/dealscope/underwriter/internal/metrics"
)

// Analysis holds the computed metrics for every strategy in a session.
type Analysis struct {
	LTR   metrics.LTRMetrics
	Room  metrics.RoomMetrics
	STR   metrics.STRMetrics
	Multi metrics.MultiMetrics
	Build metrics.BuildMetrics
	DSCR  metrics.DSCRMetrics
}

// Compute runs all six calculators against the session's current state.
func Compute(logger *zap.Logger, s *deal.Session) Analysis {
	if logger == nil {
		logger = zap.NewNop()
	}

	analysis := Analysis{
		LTR:   metrics.ComputeLTR(&s.LTR),
		Room:  metrics.ComputeRoom(&s.Room, s.RoomUnits),
		STR:   metrics.ComputeSTR(&s.STR),
		Multi: metrics.ComputeMulti(&s.Multi, s.MultiUnits),
		Build: metrics.ComputeBuild(&s.Build, s.BuildUnits),
		DSCR:  metrics.ComputeDSCR(&s.DSCR),
	}

	logger.Debug("computed analysis",
		zap.String("op", "report.Compute"),
		zap.Float64("ltrCashFlow", analysis.LTR.CashFlow),
		zap.Float64("dscr", analysis.DSCR.Lender.DSCR),
	)
	return analysis
}

// Kind tells the renderer how to format a metric's value.
type Kind int

const (
	Currency Kind = iota
	Percent
	Ratio
)

// Metric is one labeled figure in a section.
type Metric struct {
	Label string
	Value float64
	Kind  Kind
}

// Section groups one strategy's metrics under its display name.
type Section struct {
	Name    string
	Metrics []Metric
}

// Sections flattens the analysis into ordered, labeled sections.
func (a Analysis) Sections() []Section {
	return []Section{
		{
			Name: deal.StrategyLTR.Name(),
			Metrics: []Metric{
				{"Loan Amount", a.LTR.Loan, Currency},
				{"Monthly P&I", a.LTR.MonthlyPI, Currency},
				{"PITI", a.LTR.PITI, Currency},
				{"Operating Expenses", a.LTR.OperatingExpenses, Currency},
				{"Monthly Cash Flow", a.LTR.CashFlow, Currency},
				{"Cash to Close", a.LTR.CashToClose, Currency},
				{"Cash-on-Cash Return", a.LTR.CashOnCashPct, Percent},
			},
		},
		{
			Name: deal.StrategyRoom.Name(),
			Metrics: []Metric{
				{"Loan Amount", a.Room.Loan, Currency},
				{"PITI", a.Room.PITI, Currency},
				{"Cash to Close", a.Room.CashToClose, Currency},
				{"Revenue (Moved Out)", a.Room.MovedOut.Revenue, Currency},
				{"Cash Flow (Moved Out)", a.Room.MovedOut.CashFlow, Currency},
				{"CoC (Moved Out)", a.Room.MovedOut.CashOnCashPct, Percent},
				{"Revenue (Living In)", a.Room.LivingIn.Revenue, Currency},
				{"Cash Flow (Living In)", a.Room.LivingIn.CashFlow, Currency},
				{"CoC (Living In)", a.Room.LivingIn.CashOnCashPct, Percent},
			},
		},
		{
			Name: deal.StrategySTR.Name(),
			Metrics: []Metric{
				{"Loan Amount", a.STR.Loan, Currency},
				{"PITI", a.STR.PITI, Currency},
				{"Monthly Revenue", a.STR.Revenue, Currency},
				{"Operating Expenses", a.STR.OperatingExpenses, Currency},
				{"Monthly Cash Flow", a.STR.CashFlow, Currency},
				{"Cash to Close", a.STR.CashToClose, Currency},
				{"Cash-on-Cash Return", a.STR.CashOnCashPct, Percent},
			},
		},
		{
			Name: deal.StrategyMulti.Name(),
			Metrics: []Metric{
				{"Loan Amount", a.Multi.Loan, Currency},
				{"PITI", a.Multi.PITI, Currency},
				{"Total Rent", a.Multi.TotalRent, Currency},
				{"Operating Expenses", a.Multi.OperatingExpenses, Currency},
				{"Monthly Cash Flow", a.Multi.CashFlow, Currency},
				{"Cash to Close", a.Multi.CashToClose, Currency},
				{"Cash-on-Cash Return", a.Multi.CashOnCashPct, Percent},
			},
		},
		{
			Name: deal.StrategyBuild.Name(),
			Metrics: []Metric{
				{"Construction Loan", a.Build.ConstructionLoan, Currency},
				{"Construction Payment", a.Build.ConstructionPayment, Currency},
				{"Total Project Cost", a.Build.TotalProjectCost, Currency},
				{"Upfront Cash", a.Build.UpfrontCash, Currency},
				{"Permanent Loan", a.Build.PermanentLoan, Currency},
				{"Cash Out at Refi", a.Build.CashOutAtRefi, Currency},
				{"Net Cash Invested", a.Build.NetCashInvested, Currency},
				{"Stabilized PITI", a.Build.PITI, Currency},
				{"Stabilized Revenue", a.Build.Revenue, Currency},
				{"Stabilized Cash Flow", a.Build.CashFlow, Currency},
				{"Cash-on-Cash Return", a.Build.CashOnCashPct, Percent},
				{"Return on Cost", a.Build.ReturnOnCostPct, Percent},
			},
		},
		{
			Name: deal.StrategyDSCR.Name(),
			Metrics: []Metric{
				{"Loan Amount", a.DSCR.Lender.Loan, Currency},
				{"NOI", a.DSCR.Lender.NOI, Currency},
				{"Total Debt Service", a.DSCR.Lender.TotalDebtService, Currency},
				{"DSCR", a.DSCR.Lender.DSCR, Ratio},
				{"Annual Cash Flow", a.DSCR.Lender.AnnualCashFlow, Currency},
				{"Annual Cash Flow (after HM)", a.DSCR.Lender.AnnualCashFlowAfterHM, Currency},
				{"Investor PITI", a.DSCR.Investor.PITI, Currency},
				{"Investor Cash Flow", a.DSCR.Investor.CashFlowWithHM, Currency},
				{"Investor Cash Flow (after HM)", a.DSCR.Investor.CashFlowAfterHM, Currency},
				{"Investor CoC", a.DSCR.Investor.CashOnCashWithHMPct, Percent},
				{"Investor CoC (after HM)", a.DSCR.Investor.CashOnCashAfterHMPct, Percent},
			},
		},
	}
}

// PassLabel renders the lender's pass/fail verdict for the coverage test.
func (a Analysis) PassLabel() string {
	if a.DSCR.Lender.Pass {
		return "PASS"
	}
	return "FAIL"
}
