package engine

import (
	"errors"
	"testing"
)

// ── TimeToMinutes 테스트 ──

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := TimeToMinutes(tc.input)
		if err != nil {
			t.Errorf("TimeToMinutes(%q) 은 성공해야 합니다: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("TimeToMinutes(%q) 기대=%d, 실제=%d", tc.input, tc.want, got)
		}
	}
}

func TestTimeToMinutes_Malformed(t *testing.T) {
	inputs := []string{"", "9:00", "09:0", "0900", "24:00", "12:60", "ab:cd", "12:30:00"}
	for _, input := range inputs {
		_, err := TimeToMinutes(input)
		if err == nil {
			t.Errorf("TimeToMinutes(%q) 은 실패해야 합니다", input)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("TimeToMinutes(%q) 기대 FormatError, 실제: %v", input, err)
		}
	}
}

// ── MinutesToTime 테스트 ──

func TestMinutesToTime(t *testing.T) {
	cases := []struct {
		input int
		want  string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{750, "12:30"},
		{1439, "23:59"},
		{1500, "25:00"}, // 1440 이상은 정규화하지 않는다
	}
	for _, tc := range cases {
		if got := MinutesToTime(tc.input); got != tc.want {
			t.Errorf("MinutesToTime(%d) 기대=%q, 실제=%q", tc.input, tc.want, got)
		}
	}
}

// ── GenerateTimeSlots 테스트 ──

func TestGenerateTimeSlots(t *testing.T) {
	slots, err := GenerateTimeSlots("09:00", "18:00", 30)
	if err != nil {
		t.Fatalf("GenerateTimeSlots 은 성공해야 합니다: %v", err)
	}
	if len(slots) != 18 {
		t.Fatalf("기대 슬롯 수=18, 실제=%d", len(slots))
	}
	if slots[0] != "09:00" {
		t.Errorf("첫 슬롯 기대=09:00, 실제=%s", slots[0])
	}
	if slots[len(slots)-1] != "17:30" {
		t.Errorf("마지막 슬롯 기대=17:30, 실제=%s", slots[len(slots)-1])
	}
}

func TestGenerateTimeSlots_StartAfterEnd(t *testing.T) {
	slots, err := GenerateTimeSlots("18:00", "09:00", 30)
	if err != nil {
		t.Fatalf("GenerateTimeSlots 은 성공해야 합니다: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("start >= end 면 빈 목록이어야 합니다, 실제=%d", len(slots))
	}
}

func TestGenerateTimeSlots_InvalidStep(t *testing.T) {
	_, err := GenerateTimeSlots("09:00", "18:00", 0)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("기대 ValidationError, 실제: %v", err)
	}
}

// ── IsBreakTime 테스트 ──

func TestIsBreakTime(t *testing.T) {
	breaks := []BreakPeriod{{Start: "12:00", End: "13:00", Name: "점심시간"}}

	if !IsBreakTime("12:00", breaks) {
		t.Error("12:00 은 휴게시간이어야 합니다")
	}
	if !IsBreakTime("12:30", breaks) {
		t.Error("12:30 은 휴게시간이어야 합니다")
	}
	if IsBreakTime("11:30", breaks) {
		t.Error("11:30 은 휴게시간이 아니어야 합니다")
	}
	if IsBreakTime("13:00", breaks) {
		t.Error("구간 끝 13:00 은 휴게시간이 아니어야 합니다 (반개구간)")
	}
}

func TestIsBreakTime_MalformedInput(t *testing.T) {
	breaks := []BreakPeriod{{Start: "12:00", End: "13:00"}}
	if IsBreakTime("bad", breaks) {
		t.Error("파싱 불가능한 슬롯은 false 여야 합니다")
	}
	if IsBreakTime("12:00", []BreakPeriod{{Start: "bad", End: "13:00"}}) {
		t.Error("파싱 불가능한 휴게시간은 무시해야 합니다")
	}
}
