package engine

import (
	"testing"

	"github.com/shopspring/decimal"
)

func worker(id int64, name string, wage int64) Worker {
	return Worker{ID: id, Name: name, HourlyWage: wage, Position: "파트타이머"}
}

// ── OptimizeSchedule 테스트 ──

func TestOptimizeSchedule_ReduceHours(t *testing.T) {
	// 주 16시간(8h × 2일) → 주휴수당 대상, 14시간 단축 제안 1건
	ws := WorkerSchedule{Worker: worker(1, "김민수", 10000)}
	ws.Days[Monday] = DayHours{Total: 8, Regular: 8}
	ws.Days[Tuesday] = DayHours{Total: 8, Regular: 8}

	got, err := OptimizeSchedule([]WorkerSchedule{ws})
	if err != nil {
		t.Fatalf("OptimizeSchedule 은 성공해야 합니다: %v", err)
	}

	if len(got.Suggestions) != 1 {
		t.Fatalf("기대 제안 1건, 실제 %d건: %+v", len(got.Suggestions), got.Suggestions)
	}
	s := got.Suggestions[0]
	if s.Type != SuggestReduceHours {
		t.Errorf("기대 유형=%s, 실제=%s", SuggestReduceHours, s.Type)
	}
	if s.Risk != RiskLow {
		t.Errorf("단축 제안의 리스크는 LOW 여야 합니다: %s", s.Risk)
	}
	// 현재: 기본 160,000 + 주휴 32,000 = 192,000 / 최적화: 14h = 140,000
	if !s.CurrentCost.Equal(decimal.NewFromInt(192000)) {
		t.Errorf("현재 비용 기대=192000, 실제=%s", s.CurrentCost)
	}
	if !s.OptimizedCost.Equal(decimal.NewFromInt(140000)) {
		t.Errorf("최적화 비용 기대=140000, 실제=%s", s.OptimizedCost)
	}
	if !s.Savings.IsPositive() {
		t.Error("절감액은 양수여야 합니다")
	}
	if got.OverallRisk != RiskLow {
		t.Errorf("전체 리스크 기대=LOW, 실제=%s", got.OverallRisk)
	}
}

func TestOptimizeSchedule_SplitShift(t *testing.T) {
	// 화요일 10시간 근무 → 연장 2시간, 시프트 분할 제안 (MEDIUM)
	ws := WorkerSchedule{Worker: worker(2, "이서연", 10000)}
	ws.Days[Tuesday] = DayHours{Total: 10, Regular: 8, Overtime: 2}

	got, err := OptimizeSchedule([]WorkerSchedule{ws})
	if err != nil {
		t.Fatalf("OptimizeSchedule 은 성공해야 합니다: %v", err)
	}

	if len(got.Suggestions) != 1 {
		t.Fatalf("기대 제안 1건, 실제 %d건", len(got.Suggestions))
	}
	s := got.Suggestions[0]
	if s.Type != SuggestSplitShift {
		t.Errorf("기대 유형=%s, 실제=%s", SuggestSplitShift, s.Type)
	}
	if s.Risk != RiskMedium {
		t.Errorf("분할 제안의 리스크는 MEDIUM 이어야 합니다: %s", s.Risk)
	}
	// 현재: 80,000 + 연장 30,000 = 110,000 / 상한 8h: 80,000 → 절감 30,000
	if !s.Savings.Equal(decimal.NewFromInt(30000)) {
		t.Errorf("절감액 기대=30000, 실제=%s", s.Savings)
	}
	// MEDIUM 1건으로는 전체 리스크를 올리지 않는다
	if got.OverallRisk != RiskLow {
		t.Errorf("전체 리스크 기대=LOW, 실제=%s", got.OverallRisk)
	}
}

func TestOptimizeSchedule_AvoidNight(t *testing.T) {
	// 야간 4시간 → 주간대 이동 제안, 전체 리스크 HIGH
	ws := WorkerSchedule{Worker: worker(3, "박지훈", 10000)}
	ws.Days[Friday] = DayHours{Total: 4, Regular: 4, Night: 4}

	got, err := OptimizeSchedule([]WorkerSchedule{ws})
	if err != nil {
		t.Fatalf("OptimizeSchedule 은 성공해야 합니다: %v", err)
	}

	if len(got.Suggestions) != 1 {
		t.Fatalf("기대 제안 1건, 실제 %d건", len(got.Suggestions))
	}
	s := got.Suggestions[0]
	if s.Type != SuggestAvoidNight {
		t.Errorf("기대 유형=%s, 실제=%s", SuggestAvoidNight, s.Type)
	}
	// 야간 가산 4h × 10,000 × 1.5 = 60,000 절감
	if !s.Savings.Equal(decimal.NewFromInt(60000)) {
		t.Errorf("절감액 기대=60000, 실제=%s", s.Savings)
	}
	if got.OverallRisk != RiskHigh {
		t.Errorf("야간 제안이 있으면 전체 리스크는 HIGH: %s", got.OverallRisk)
	}
}

func TestOptimizeSchedule_SortedBySavings(t *testing.T) {
	// 야간 근무자(절감 60,000)와 연장 근무자(절감 30,000) → 절감액 내림차순
	night := WorkerSchedule{Worker: worker(1, "야간", 10000)}
	night.Days[Monday] = DayHours{Total: 4, Regular: 4, Night: 4}

	overtime := WorkerSchedule{Worker: worker(2, "연장", 10000)}
	overtime.Days[Monday] = DayHours{Total: 10, Regular: 8, Overtime: 2}

	got, err := OptimizeSchedule([]WorkerSchedule{overtime, night})
	if err != nil {
		t.Fatalf("OptimizeSchedule 은 성공해야 합니다: %v", err)
	}

	if len(got.Suggestions) != 2 {
		t.Fatalf("기대 제안 2건, 실제 %d건", len(got.Suggestions))
	}
	for i := 1; i < len(got.Suggestions); i++ {
		if got.Suggestions[i].Savings.GreaterThan(got.Suggestions[i-1].Savings) {
			t.Errorf("제안이 절감액 내림차순이 아닙니다: %s > %s",
				got.Suggestions[i].Savings, got.Suggestions[i-1].Savings)
		}
	}
	if got.Suggestions[0].Type != SuggestAvoidNight {
		t.Errorf("절감액이 큰 야간 제안이 먼저 와야 합니다: %s", got.Suggestions[0].Type)
	}
	wantTotal := got.Suggestions[0].Savings.Add(got.Suggestions[1].Savings)
	if !got.TotalSavings.Equal(wantTotal) {
		t.Errorf("TotalSavings 기대=%s, 실제=%s", wantTotal, got.TotalSavings)
	}
	if !got.OptimizedTotalCost.Equal(got.CurrentTotalCost.Sub(got.TotalSavings)) {
		t.Error("OptimizedTotalCost = CurrentTotalCost - TotalSavings 이어야 합니다")
	}
}

func TestOptimizeSchedule_Empty(t *testing.T) {
	got, err := OptimizeSchedule(nil)
	if err != nil {
		t.Fatalf("빈 스케줄은 성공해야 합니다: %v", err)
	}
	if len(got.Suggestions) != 0 {
		t.Errorf("빈 스케줄에는 제안이 없어야 합니다: %d건", len(got.Suggestions))
	}
	if got.ComplianceScore != 1.0 {
		t.Errorf("제안이 없으면 준수 점수 1.0: %v", got.ComplianceScore)
	}
	if got.OverallRisk != RiskLow {
		t.Errorf("제안이 없으면 전체 리스크 LOW: %s", got.OverallRisk)
	}
}

// ── 내부 헬퍼 테스트 ──

func TestDeriveOverallRisk(t *testing.T) {
	medium := Suggestion{Risk: RiskMedium}

	tests := []struct {
		name        string
		suggestions []Suggestion
		want        RiskLevel
	}{
		{"빈 목록", nil, RiskLow},
		{"LOW 만", []Suggestion{{Risk: RiskLow}}, RiskLow},
		{"MEDIUM 2건", []Suggestion{medium, medium}, RiskLow},
		{"MEDIUM 3건", []Suggestion{medium, medium, medium}, RiskMedium},
		{"HIGH 포함", []Suggestion{medium, {Risk: RiskHigh}}, RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveOverallRisk(tt.suggestions); got != tt.want {
				t.Errorf("기대=%s, 실제=%s", tt.want, got)
			}
		})
	}
}

func TestScaleWeek(t *testing.T) {
	week := WeekHours{Total: 16, Regular: 16, HolidayEligible: true}

	got := scaleWeek(week, OptimalWeeklyHours)

	if !almostEqual(got.Total, 14) {
		t.Errorf("기대 총시간=14, 실제=%v", got.Total)
	}
	if !almostEqual(got.Regular, 14) {
		t.Errorf("기대 기본시간=14, 실제=%v", got.Regular)
	}
	if got.HolidayEligible {
		t.Error("14시간으로 축소하면 주휴수당 대상이 아니어야 합니다")
	}

	// 목표가 현재보다 크면 변경 없음
	unchanged := scaleWeek(WeekHours{Total: 10, Regular: 10}, 14)
	if !almostEqual(unchanged.Total, 10) {
		t.Errorf("축소 대상이 아니면 그대로 반환해야 합니다: %v", unchanged.Total)
	}
}

func TestComplianceScore(t *testing.T) {
	if got := complianceScore(nil); got != 1.0 {
		t.Errorf("빈 목록의 준수 점수 기대=1.0, 실제=%v", got)
	}
	suggestions := []Suggestion{
		{LegalCompliance: true},
		{LegalCompliance: true},
		{LegalCompliance: false},
	}
	want := 2.0 / 3.0
	if got := complianceScore(suggestions); !almostEqual(got, want) {
		t.Errorf("기대=%v, 실제=%v", want, got)
	}
}
