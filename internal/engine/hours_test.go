package engine

import (
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ── CalculateDailyHours 테스트 ──

func TestCalculateDailyHours_WithBreak(t *testing.T) {
	entry := ShiftEntry{
		Start:  "09:00",
		End:    "18:00",
		Breaks: []BreakPeriod{{Start: "12:00", End: "13:00", Name: "점심시간"}},
	}

	got, err := CalculateDailyHours(entry)
	if err != nil {
		t.Fatalf("CalculateDailyHours 는 성공해야 합니다: %v", err)
	}
	if !almostEqual(got.Total, 8) {
		t.Errorf("기대 Total=8, 실제=%v", got.Total)
	}
	if !almostEqual(got.Regular, 8) || !almostEqual(got.Overtime, 0) {
		t.Errorf("기대 Regular=8/Overtime=0, 실제=%v/%v", got.Regular, got.Overtime)
	}
	if !almostEqual(got.Night, 0) {
		t.Errorf("주간 근무에 야간시간이 있으면 안 됩니다: %v", got.Night)
	}
}

func TestCalculateDailyHours_OvertimeSplit(t *testing.T) {
	// 성질: 모든 총시간 h 에 대해 regular + overtime == h, regular == min(h, 8)
	cases := []struct {
		start, end string
		total      float64
	}{
		{"09:00", "12:00", 3},
		{"09:00", "17:00", 8},
		{"09:00", "19:00", 10},
		{"06:00", "20:00", 14},
	}
	for _, tc := range cases {
		got, err := CalculateDailyHours(ShiftEntry{Start: tc.start, End: tc.end})
		if err != nil {
			t.Fatalf("CalculateDailyHours(%s-%s) 실패: %v", tc.start, tc.end, err)
		}
		if !almostEqual(got.Total, tc.total) {
			t.Errorf("%s-%s 기대 Total=%v, 실제=%v", tc.start, tc.end, tc.total, got.Total)
		}
		if !almostEqual(got.Regular+got.Overtime, got.Total) {
			t.Errorf("%s-%s regular+overtime != total (%v+%v != %v)", tc.start, tc.end, got.Regular, got.Overtime, got.Total)
		}
		if !almostEqual(got.Regular, math.Min(got.Total, MaxRegularDailyHours)) {
			t.Errorf("%s-%s regular != min(total, 8): %v", tc.start, tc.end, got.Regular)
		}
	}
}

func TestCalculateDailyHours_OvernightRollover(t *testing.T) {
	// 22:00 → 06:00 야간 근무: 익일 퇴근으로 간주
	got, err := CalculateDailyHours(ShiftEntry{Start: "22:00", End: "06:00"})
	if err != nil {
		t.Fatalf("CalculateDailyHours 는 성공해야 합니다: %v", err)
	}
	if !almostEqual(got.Total, 8) {
		t.Errorf("기대 Total=8, 실제=%v", got.Total)
	}
	if !almostEqual(got.Night, 8) {
		t.Errorf("22:00-06:00 전체가 야간이어야 합니다, 실제=%v", got.Night)
	}
}

func TestCalculateDailyHours_NightApproximation(t *testing.T) {
	// 20:00 → 05:00 (9시간): 야간대 겹침 22:00-05:00 = 7시간
	got, err := CalculateDailyHours(ShiftEntry{Start: "20:00", End: "05:00"})
	if err != nil {
		t.Fatalf("CalculateDailyHours 는 성공해야 합니다: %v", err)
	}
	if !almostEqual(got.Total, 9) {
		t.Errorf("기대 Total=9, 실제=%v", got.Total)
	}
	if !almostEqual(got.Night, 7) {
		t.Errorf("기대 Night=7, 실제=%v", got.Night)
	}
}

func TestCalculateDailyHours_NightCap(t *testing.T) {
	// 야간시간은 min(total, 8) 을 넘지 않는다 (원 서비스의 근사 유지)
	got, err := CalculateDailyHours(ShiftEntry{Start: "21:00", End: "07:00"})
	if err != nil {
		t.Fatalf("CalculateDailyHours 는 성공해야 합니다: %v", err)
	}
	if got.Night > MaxRegularDailyHours {
		t.Errorf("야간시간 상한 8시간 초과: %v", got.Night)
	}
}

func TestCalculateDailyHours_MalformedTime(t *testing.T) {
	_, err := CalculateDailyHours(ShiftEntry{Start: "구시", End: "18:00"})
	if err == nil {
		t.Error("잘못된 시간 형식은 오류여야 합니다")
	}
}

// ── CalculateWeeklyHours 테스트 ──

func TestCalculateWeeklyHours_Sum(t *testing.T) {
	days := []DayHours{
		{Total: 8, Regular: 8},
		{Total: 10, Regular: 8, Overtime: 2},
		{Total: 6, Regular: 6, Night: 2},
	}

	week := CalculateWeeklyHours(days)
	if !almostEqual(week.Total, 24) {
		t.Errorf("기대 Total=24, 실제=%v", week.Total)
	}
	if !almostEqual(week.Regular, 22) || !almostEqual(week.Overtime, 2) || !almostEqual(week.Night, 2) {
		t.Errorf("버킷 합산 오류: %+v", week)
	}
	if !week.HolidayEligible {
		t.Error("주 24시간은 주휴수당 대상이어야 합니다")
	}
}

func TestCalculateWeeklyHours_HolidayThreshold(t *testing.T) {
	// 성질: 모든 주간 총시간 t 에 대해 eligible == (t >= 15)
	cases := []struct {
		total    float64
		eligible bool
	}{
		{0, false},
		{14, false},
		{14.5, false},
		{15, true},
		{15.5, true},
		{40, true},
	}
	for _, tc := range cases {
		week := CalculateWeeklyHours([]DayHours{{Total: tc.total, Regular: math.Min(tc.total, 8)}})
		if week.HolidayEligible != tc.eligible {
			t.Errorf("총 %v시간: 기대 eligible=%v, 실제=%v", tc.total, tc.eligible, week.HolidayEligible)
		}
	}
}

func TestCalculateWeeklyHours_Idempotent(t *testing.T) {
	days := []DayHours{{Total: 8, Regular: 8}, {Total: 9, Regular: 8, Overtime: 1}}
	first := CalculateWeeklyHours(days)
	second := CalculateWeeklyHours(days)
	if !reflect.DeepEqual(first, second) {
		t.Error("동일 입력에 대해 결과가 달라지면 안 됩니다 (순수 함수)")
	}
}

// ── DayHoursFromSlots 테스트 ──

func TestDayHoursFromSlots(t *testing.T) {
	w, err := NewWeek(30).WithOperatingHours(Monday, true, "09:00", "18:00")
	if err != nil {
		t.Fatalf("WithOperatingHours 는 성공해야 합니다: %v", err)
	}
	// 직원 1: 09:00-12:00 (슬롯 6개 = 3시간)
	for _, slot := range []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"} {
		w = w.Assign(Monday, slot, 1)
	}
	w = w.Assign(Monday, "13:00", 2) // 다른 직원 배정은 제외되어야 한다

	got := DayHoursFromSlots(w.Days[Monday], 1, w.SlotMinutes)
	if !almostEqual(got.Total, 3) {
		t.Errorf("기대 Total=3, 실제=%v", got.Total)
	}
	if !almostEqual(got.Night, 0) {
		t.Errorf("주간 슬롯에 야간시간이 있으면 안 됩니다: %v", got.Night)
	}
}

func TestDayHoursFromSlots_ClosedDay_Zero(t *testing.T) {
	d := NewDaySchedule(false, "", "")
	got := DayHoursFromSlots(d, 1, 30)
	if got.Total != 0 {
		t.Errorf("휴무일은 0시간이어야 합니다, 실제=%v", got.Total)
	}
}

func TestWeeklyHoursForEmployee(t *testing.T) {
	w, err := NewWeek(30).WithOperatingHours(Monday, true, "09:00", "18:00")
	if err != nil {
		t.Fatalf("WithOperatingHours 는 성공해야 합니다: %v", err)
	}
	w, err = w.WithOperatingHours(Tuesday, true, "09:00", "18:00")
	if err != nil {
		t.Fatalf("WithOperatingHours 는 성공해야 합니다: %v", err)
	}

	// 월/화 각 09:00-17:00 (16개 슬롯 = 8시간)
	for _, day := range []Weekday{Monday, Tuesday} {
		for m := 540; m < 1020; m += 30 {
			w = w.Assign(day, MinutesToTime(m), 1)
		}
	}

	week := WeeklyHoursForEmployee(w, 1)
	if !almostEqual(week.Total, 16) {
		t.Errorf("기대 Total=16, 실제=%v", week.Total)
	}
	if !week.HolidayEligible {
		t.Error("주 16시간은 주휴수당 대상이어야 합니다")
	}
}
