package services

import "math"

// RiskLevel is the qualitative risk of an Iron Triangle configuration.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// TriangleInputs are independent 0-100 sliders for the quality/time/cost
// triangle. For time and cost, lower numbers mean a tighter constraint
// (less time, less money). Inputs must be clamped to [0,100] before they
// reach the scorer.
type TriangleInputs struct {
	Quality int `json:"quality"`
	Time    int `json:"time"`
	Cost    int `json:"cost"`
}

// Clamp returns a copy with every axis forced into [0,100]. Handlers apply
// it at the request boundary so the scorer itself never sees bad input.
func (in TriangleInputs) Clamp() TriangleInputs {
	return TriangleInputs{
		Quality: clampAxis(in.Quality),
		Time:    clampAxis(in.Time),
		Cost:    clampAxis(in.Cost),
	}
}

func clampAxis(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// TriangleAnalysis is the scorer's verdict on one input triple.
type TriangleAnalysis struct {
	IsViable        bool      `json:"isViable"`
	IsProfitable    bool      `json:"isProfitable"`
	RiskLevel       RiskLevel `json:"riskLevel"`
	Warnings        []string  `json:"warnings"`
	Recommendations []string  `json:"recommendations"`
	Score           float64   `json:"score"`
}

// triangleRule is one step of the ordered pipeline. Rules mutate the shared
// analysis accumulator; order matters because later rules may override the
// risk level set earlier (the balance override in particular runs after the
// constraint rules and can lower it).
type triangleRule func(in TriangleInputs, a *TriangleAnalysis)

var triangleRules = []triangleRule{
	ruleHighQualityLowResources,
	ruleLowTime,
	ruleLowCost,
	ruleBalanceBonus,
	ruleBalanceThresholds,
	ruleProjectValue,
}

// AnalyzeTriangle runs the heuristic rules over the input triple and
// produces a viability assessment plus a composite 0-100 score. It is a
// pure function; there is no state between calls.
func AnalyzeTriangle(in TriangleInputs) TriangleAnalysis {
	a := TriangleAnalysis{
		IsViable:        true,
		IsProfitable:    true,
		RiskLevel:       RiskLow,
		Warnings:        []string{},
		Recommendations: []string{},
	}

	for _, rule := range triangleRules {
		rule(in, &a)
	}

	a.Score = triangleScore(in, a.IsViable)
	return a
}

// raiseRisk escalates but never lowers the risk level.
func raiseRisk(a *TriangleAnalysis, level RiskLevel) {
	if riskRank(level) > riskRank(a.RiskLevel) {
		a.RiskLevel = level
	}
}

func riskRank(level RiskLevel) int {
	switch level {
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}

// ruleHighQualityLowResources: demanding high quality while squeezing both
// time and cost is not deliverable.
func ruleHighQualityLowResources(in TriangleInputs, a *TriangleAnalysis) {
	if in.Quality <= 70 {
		return
	}
	if in.Time < 50 && in.Cost < 50 {
		a.IsViable = false
		a.RiskLevel = RiskHigh
		a.Warnings = append(a.Warnings,
			"High quality cannot be delivered with both time and cost this constrained.")
		a.Recommendations = append(a.Recommendations,
			"Raise the time or cost investment to at least 60 to support this quality target.")
		return
	}
	if in.Time < 40 || in.Cost < 40 {
		a.Warnings = append(a.Warnings,
			"High quality with a tight time or cost constraint leaves little margin.")
		raiseRisk(a, RiskMedium)
	}
}

// ruleLowTime: an aggressive deadline only works with modest quality or a
// generous budget.
func ruleLowTime(in TriangleInputs, a *TriangleAnalysis) {
	if in.Time >= 30 {
		return
	}
	if in.Quality > 60 && in.Cost < 60 {
		a.IsViable = false
		a.RiskLevel = RiskHigh
		a.Warnings = append(a.Warnings,
			"The deadline is too aggressive for the requested quality at this budget.")
		a.Recommendations = append(a.Recommendations,
			"Reduce quality to around 50, or raise the cost investment to at least 70.")
		return
	}
	if in.Quality > 50 {
		a.Warnings = append(a.Warnings,
			"A very short timeline puts the quality target under pressure.")
		raiseRisk(a, RiskMedium)
	}
}

// ruleLowCost: a squeezed budget needs either extra time or lower quality.
func ruleLowCost(in TriangleInputs, a *TriangleAnalysis) {
	if in.Cost >= 30 {
		return
	}
	if in.Quality > 50 && in.Time < 60 {
		a.IsViable = false
		a.RiskLevel = RiskHigh
		a.Warnings = append(a.Warnings,
			"The budget is too tight for this quality level without more time.")
		a.Recommendations = append(a.Recommendations,
			"Extend the timeline to at least 70, or cut the quality target to around 40.")
		return
	}
	if in.Quality > 40 {
		a.Warnings = append(a.Warnings,
			"A minimal budget limits how much quality can realistically be delivered.")
		raiseRisk(a, RiskMedium)
	}
}

// ruleBalanceBonus: configurations where every pairwise average sits high
// (premium) or low (economical) get tailored guidance.
func ruleBalanceBonus(in TriangleInputs, a *TriangleAnalysis) {
	qt := float64(in.Quality+in.Time) / 2
	qc := float64(in.Quality+in.Cost) / 2
	tc := float64(in.Time+in.Cost) / 2

	if qt >= 60 && qc >= 60 && tc >= 60 {
		a.Recommendations = append(a.Recommendations,
			"Well-balanced premium configuration; a strong candidate for a flagship project.")
		a.IsProfitable = true
		return
	}

	if qt <= 40 && qc <= 40 && tc <= 40 {
		a.Recommendations = append(a.Recommendations,
			"Economical configuration; verify the client's expectations match the reduced scope.")
		if in.Quality < 25 {
			a.IsProfitable = false
			a.Warnings = append(a.Warnings,
				"Quality this low risks rework that erases the savings.")
		}
	}
}

// ruleBalanceThresholds: the explicit imbalance cutoffs. A tight triangle
// forces risk back down to low even if earlier rules raised it; a badly
// skewed one adds a warning.
func ruleBalanceThresholds(in TriangleInputs, a *TriangleAnalysis) {
	imbalance := triangleImbalance(in)
	if imbalance <= 30 {
		a.RiskLevel = RiskLow
		a.Recommendations = append(a.Recommendations,
			"Excellent balance between quality, time and cost.")
		return
	}
	if imbalance > 80 {
		a.Warnings = append(a.Warnings,
			"The three axes are heavily imbalanced; expect friction between them.")
		raiseRisk(a, RiskMedium)
	}
}

// ruleProjectValue: weighted value of the configuration, quality-leaning.
func ruleProjectValue(in TriangleInputs, a *TriangleAnalysis) {
	value := float64(in.Quality)*0.4 + float64(in.Time)*0.3 + float64(in.Cost)*0.3
	if value >= 70 {
		a.Recommendations = append(a.Recommendations,
			"High-value configuration; worth presenting as the recommended option.")
		return
	}
	if value <= 35 {
		a.Recommendations = append(a.Recommendations,
			"Limited value configuration; review the project objectives.")
		if value <= 25 {
			a.IsProfitable = false
		}
	}
}

func triangleImbalance(in TriangleInputs) float64 {
	return math.Abs(float64(in.Quality-in.Time)) +
		math.Abs(float64(in.Quality-in.Cost)) +
		math.Abs(float64(in.Time-in.Cost))
}

// triangleScore combines the average axis value with a balance bonus and a
// viability penalty, clamped to [0,100].
func triangleScore(in TriangleInputs, viable bool) float64 {
	average := float64(in.Quality+in.Time+in.Cost) / 3
	balance := ((200 - triangleImbalance(in)) / 200) * 40
	penalty := 0.0
	if !viable {
		penalty = 15
	}
	score := average*0.6 + balance - penalty
	return math.Min(100, math.Max(0, score))
}
