package engine

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ── 스케줄 비용 최적화 ──

// SuggestionType 최적화 제안 유형
type SuggestionType string

const (
	SuggestReduceHours  SuggestionType = "REDUCE_HOURS" // 주휴수당 기준 미만으로 단축
	SuggestSplitShift   SuggestionType = "SPLIT_SHIFT"  // 연장근로 유발 시프트 분할
	SuggestAvoidNight   SuggestionType = "AVOID_NIGHT"  // 야간근로 회피
	SuggestRedistribute SuggestionType = "REDISTRIBUTE" // 직원 간 재배분 (수동 편집 화면에서 사용)
)

// RiskLevel 제안의 운영 리스크 수준
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// OptimalWeeklyHours 주휴수당 회피 시 권장 주간 근로시간 상한
// 지급 기준(15시간) 바로 아래 값이다.
const OptimalWeeklyHours = 14.0

// Worker 최적화 대상 직원
type Worker struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	HourlyWage int64  `json:"hourly_wage"`
	Position   string `json:"position"`
}

// WorkerSchedule 직원 한 명의 주간 스케줄 (요일별 근로시간 버킷)
type WorkerSchedule struct {
	Worker Worker                `json:"worker"`
	Days   [DaysPerWeek]DayHours `json:"days"`
}

// Suggestion 단일 최적화 제안
//
// LegalCompliance 는 "제안이 적법한가" 만을 뜻한다. 주휴수당 지급을 피하기 위한
// 근로시간 단축은 적법한 스케줄 설계로 분류되지만(legal_compliance=true),
// 권장 여부는 별개의 판단이므로 제안 설명과 리스크 수준에 그 맥락을 남긴다.
type Suggestion struct {
	Type            SuggestionType  `json:"type"`
	WorkerID        int64           `json:"worker_id"`
	WorkerName      string          `json:"worker_name"`
	Description     string          `json:"description"`
	CurrentCost     decimal.Decimal `json:"current_cost"`
	OptimizedCost   decimal.Decimal `json:"optimized_cost"`
	Savings         decimal.Decimal `json:"savings"`
	SavingsPercent  float64         `json:"savings_percent"`
	Risk            RiskLevel       `json:"risk"`
	LegalCompliance bool            `json:"legal_compliance"`
}

// OptimizationResult 최적화 스캔 전체 결과
type OptimizationResult struct {
	Suggestions        []Suggestion    `json:"suggestions"`
	CurrentTotalCost   decimal.Decimal `json:"current_total_cost"`
	OptimizedTotalCost decimal.Decimal `json:"optimized_total_cost"`
	TotalSavings       decimal.Decimal `json:"total_savings"`
	SavingsPercent     float64         `json:"savings_percent"`
	OverallRisk        RiskLevel       `json:"overall_risk"`
	ComplianceScore    float64         `json:"compliance_score"`
}

// OptimizeSchedule 직원별 주간 스케줄을 스캔해 비용 절감 제안 생성
//
// 규칙:
//  1. 주간 15시간 이상 → 14시간으로 단축 제안 (주휴수당 회피, 리스크 LOW)
//  2. 일일 8시간 초과 → 8시간 상한 제안 (연장수당 회피, 초과분은 타 시프트로
//     이전해야 하므로 리스크 MEDIUM)
//  3. 야간근로 존재 → 주간대 이동 제안 (운영 실현 가능성 불확실, 리스크 HIGH)
//
// 제안은 절감액 내림차순으로 정렬된다.
func OptimizeSchedule(schedules []WorkerSchedule) (OptimizationResult, error) {
	var suggestions []Suggestion
	currentTotal := decimal.Zero

	for _, ws := range schedules {
		week := CalculateWeeklyHours(ws.Days[:])

		current, err := CalculatePayroll(week.Total, week.Regular, week.Overtime, week.Night, ws.Worker.HourlyWage, week.HolidayEligible)
		if err != nil {
			return OptimizationResult{}, err
		}
		currentTotal = currentTotal.Add(current.Total)

		// 규칙 1: 주휴수당 기준(15시간) 이상 → 14시간으로 단축
		if week.HolidayEligible {
			trimmed := scaleWeek(week, OptimalWeeklyHours)
			optimized, err := CalculatePayroll(trimmed.Total, trimmed.Regular, trimmed.Overtime, trimmed.Night, ws.Worker.HourlyWage, false)
			if err != nil {
				return OptimizationResult{}, err
			}
			if s, ok := buildSuggestion(SuggestReduceHours, ws.Worker, current.Total, optimized.Total,
				fmt.Sprintf("주 %.1f시간 → %.0f시간으로 단축해 주휴수당 지급 기준(%.0f시간) 미만으로 조정",
					week.Total, OptimalWeeklyHours, HolidayEligibleWeeklyHours),
				RiskLow); ok {
				suggestions = append(suggestions, s)
			}
		}

		// 규칙 2: 일일 8시간 초과 → 8시간 상한 (초과분은 타 시프트로 이전)
		for dayIdx, day := range ws.Days {
			if day.Overtime <= 0 {
				continue
			}
			currentDay, err := CalculatePayroll(day.Total, day.Regular, day.Overtime, day.Night, ws.Worker.HourlyWage, false)
			if err != nil {
				return OptimizationResult{}, err
			}
			cappedNight := day.Night
			if cappedNight > MaxRegularDailyHours {
				cappedNight = MaxRegularDailyHours
			}
			optimizedDay, err := CalculatePayroll(MaxRegularDailyHours, MaxRegularDailyHours, 0, cappedNight, ws.Worker.HourlyWage, false)
			if err != nil {
				return OptimizationResult{}, err
			}
			if s, ok := buildSuggestion(SuggestSplitShift, ws.Worker, currentDay.Total, optimizedDay.Total,
				fmt.Sprintf("%s요일 %.1f시간 근무를 8시간으로 제한하고 초과 %.1f시간은 다른 시프트로 분할",
					dayName(Weekday(dayIdx)), day.Total, day.Overtime),
				RiskMedium); ok {
				suggestions = append(suggestions, s)
			}
		}

		// 규칙 3: 야간근로 → 주간대 이동
		if week.Night > 0 {
			optimized, err := CalculatePayroll(week.Total, week.Regular, week.Overtime, 0, ws.Worker.HourlyWage, week.HolidayEligible)
			if err != nil {
				return OptimizationResult{}, err
			}
			if s, ok := buildSuggestion(SuggestAvoidNight, ws.Worker, current.Total, optimized.Total,
				fmt.Sprintf("야간(22:00~06:00) %.1f시간을 주간대로 이동해 야간 가산수당 제거", week.Night),
				RiskHigh); ok {
				suggestions = append(suggestions, s)
			}
		}
	}

	// 절감액 내림차순 정렬
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Savings.GreaterThan(suggestions[j].Savings)
	})

	totalSavings := decimal.Zero
	for _, s := range suggestions {
		totalSavings = totalSavings.Add(s.Savings)
	}

	result := OptimizationResult{
		Suggestions:        suggestions,
		CurrentTotalCost:   currentTotal,
		OptimizedTotalCost: currentTotal.Sub(totalSavings),
		TotalSavings:       totalSavings,
		OverallRisk:        deriveOverallRisk(suggestions),
		ComplianceScore:    complianceScore(suggestions),
	}
	if currentTotal.IsPositive() {
		result.SavingsPercent, _ = totalSavings.Div(currentTotal).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	}
	return result, nil
}

// ── 내부 헬퍼 ──

// buildSuggestion 절감액이 양수인 경우에만 제안 생성
func buildSuggestion(typ SuggestionType, w Worker, current, optimized decimal.Decimal, desc string, risk RiskLevel) (Suggestion, bool) {
	savings := current.Sub(optimized)
	if !savings.IsPositive() {
		return Suggestion{}, false
	}

	s := Suggestion{
		Type:            typ,
		WorkerID:        w.ID,
		WorkerName:      w.Name,
		Description:     desc,
		CurrentCost:     current,
		OptimizedCost:   optimized,
		Savings:         savings,
		Risk:            risk,
		LegalCompliance: true,
	}
	if current.IsPositive() {
		s.SavingsPercent, _ = savings.Div(current).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	}
	return s, true
}

// scaleWeek 주간 버킷을 목표 총시간으로 비례 축소
func scaleWeek(week WeekHours, targetTotal float64) WeekHours {
	if week.Total <= 0 || targetTotal >= week.Total {
		return week
	}
	factor := targetTotal / week.Total
	return WeekHours{
		Total:           week.Total * factor,
		Regular:         week.Regular * factor,
		Overtime:        week.Overtime * factor,
		Night:           week.Night * factor,
		HolidayEligible: targetTotal >= HolidayEligibleWeeklyHours,
	}
}

// deriveOverallRisk 전체 리스크: HIGH 하나라도 있으면 HIGH,
// MEDIUM 이 2건 초과면 MEDIUM, 그 외 LOW
func deriveOverallRisk(suggestions []Suggestion) RiskLevel {
	mediumCount := 0
	for _, s := range suggestions {
		switch s.Risk {
		case RiskHigh:
			return RiskHigh
		case RiskMedium:
			mediumCount++
		}
	}
	if mediumCount > 2 {
		return RiskMedium
	}
	return RiskLow
}

// complianceScore 적법 플래그가 설정된 제안의 비율 (제안이 없으면 1.0)
func complianceScore(suggestions []Suggestion) float64 {
	if len(suggestions) == 0 {
		return 1.0
	}
	compliant := 0
	for _, s := range suggestions {
		if s.LegalCompliance {
			compliant++
		}
	}
	return float64(compliant) / float64(len(suggestions))
}

var dayNames = [DaysPerWeek]string{"월", "화", "수", "목", "금", "토", "일"}

// dayName 요일 한글 약칭
func dayName(d Weekday) string {
	if !d.Valid() {
		return "?"
	}
	return dayNames[d]
}
