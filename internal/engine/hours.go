package engine

// ── 근로시간 집계 ──

const (
	// MaxRegularDailyHours 일일 소정근로 최대 시간 (초과분은 연장근로)
	MaxRegularDailyHours = 8.0

	// HolidayEligibleWeeklyHours 주휴수당 지급 기준 주간 근로시간
	HolidayEligibleWeeklyHours = 15.0

	// 야간근로 시간대: 22:00 ~ 익일 06:00
	nightStartMinute = 22 * 60
	nightEndMinute   = 30 * 60 // 익일 06:00 (자정 기준 분 단위, 롤오버 포함)

	minutesPerDay = 24 * 60
)

// ShiftEntry 하루 근무 기록 (시작/종료 시각과 휴게시간)
// End 가 Start 보다 이르거나 같으면 익일 퇴근으로 간주한다.
type ShiftEntry struct {
	Start  string
	End    string
	Breaks []BreakPeriod
}

// DayHours 하루 근로시간 버킷
type DayHours struct {
	Total    float64 `json:"total"`
	Regular  float64 `json:"regular"`
	Overtime float64 `json:"overtime"`
	Night    float64 `json:"night"`
}

// WeekHours 주간 근로시간 버킷
type WeekHours struct {
	Total           float64 `json:"total"`
	Regular         float64 `json:"regular"`
	Overtime        float64 `json:"overtime"`
	Night           float64 `json:"night"`
	HolidayEligible bool    `json:"holiday_eligible"`
}

// CalculateDailyHours 하루 근무 기록을 근로시간 버킷으로 환산
//
// 야간시간은 22:00~06:00 구간과의 겹침을 min(total, 8) 로 상한한 근사치다.
// 원 서비스와 동일한 단순화로, 최적화 제안의 절감액 계산도 같은 근사를
// 사용하므로 이 값만 정밀하게 바꾸면 안 된다.
func CalculateDailyHours(entry ShiftEntry) (DayHours, error) {
	startMin, err := TimeToMinutes(entry.Start)
	if err != nil {
		return DayHours{}, err
	}
	endMin, err := TimeToMinutes(entry.End)
	if err != nil {
		return DayHours{}, err
	}

	// 종료가 시작보다 이르면 익일 퇴근
	if endMin <= startMin {
		endMin += minutesPerDay
	}

	breakMinutes := 0
	for _, b := range entry.Breaks {
		bs, err := TimeToMinutes(b.Start)
		if err != nil {
			return DayHours{}, err
		}
		be, err := TimeToMinutes(b.End)
		if err != nil {
			return DayHours{}, err
		}
		if be > bs {
			breakMinutes += be - bs
		}
	}

	workMinutes := endMin - startMin - breakMinutes
	if workMinutes < 0 {
		workMinutes = 0
	}

	total := float64(workMinutes) / 60.0
	regular := total
	if regular > MaxRegularDailyHours {
		regular = MaxRegularDailyHours
	}
	overtime := total - regular

	night := nightOverlapHours(startMin, endMin)
	nightCap := total
	if nightCap > MaxRegularDailyHours {
		nightCap = MaxRegularDailyHours
	}
	if night > nightCap {
		night = nightCap
	}

	return DayHours{Total: total, Regular: regular, Overtime: overtime, Night: night}, nil
}

// CalculateWeeklyHours 일별 버킷을 주간 버킷으로 합산
// 주간 총 근로시간이 15시간 이상이면 주휴수당 대상이다.
func CalculateWeeklyHours(days []DayHours) WeekHours {
	var week WeekHours
	for _, d := range days {
		week.Total += d.Total
		week.Regular += d.Regular
		week.Overtime += d.Overtime
		week.Night += d.Night
	}
	week.HolidayEligible = week.Total >= HolidayEligibleWeeklyHours
	return week
}

// DayHoursFromSlots 템플릿의 슬롯 배정에서 특정 직원의 하루 버킷 산출
// 슬롯은 휴게시간을 이미 제외하고 있으므로 배정 슬롯 수 × 간격이 곧 근로시간이다.
func DayHoursFromSlots(d DaySchedule, employeeID int64, slotMinutes int) DayHours {
	if !d.Open || slotMinutes <= 0 {
		return DayHours{}
	}

	workMinutes := 0
	nightMinutes := 0
	for slot, ids := range d.Slots {
		assigned := false
		for _, id := range ids {
			if id == employeeID {
				assigned = true
				break
			}
		}
		if !assigned {
			continue
		}
		workMinutes += slotMinutes

		slotMin, err := TimeToMinutes(slot)
		if err != nil {
			continue
		}
		if slotMin >= nightStartMinute || slotMin < nightEndMinute-minutesPerDay {
			nightMinutes += slotMinutes
		}
	}

	total := float64(workMinutes) / 60.0
	regular := total
	if regular > MaxRegularDailyHours {
		regular = MaxRegularDailyHours
	}
	overtime := total - regular

	night := float64(nightMinutes) / 60.0
	nightCap := regular
	if night > nightCap {
		night = nightCap
	}

	return DayHours{Total: total, Regular: regular, Overtime: overtime, Night: night}
}

// WeeklyHoursForEmployee 템플릿 전체에서 특정 직원의 주간 버킷 산출
func WeeklyHoursForEmployee(w Week, employeeID int64) WeekHours {
	days := make([]DayHours, 0, DaysPerWeek)
	for _, d := range w.Days {
		days = append(days, DayHoursFromSlots(d, employeeID, w.SlotMinutes))
	}
	return CalculateWeeklyHours(days)
}

// DailyHoursForEmployee 템플릿에서 특정 직원의 요일별 버킷 산출 (최적화 입력용)
func DailyHoursForEmployee(w Week, employeeID int64) [DaysPerWeek]DayHours {
	var days [DaysPerWeek]DayHours
	for i, d := range w.Days {
		days[i] = DayHoursFromSlots(d, employeeID, w.SlotMinutes)
	}
	return days
}

// nightOverlapHours [startMin, endMin) 근무 구간과 야간대(22:00~06:00)의 겹침 시간
// 익일 롤오버(endMin 이 1440 초과)를 고려해 인접한 야간 구간을 모두 검사한다.
func nightOverlapHours(startMin, endMin int) float64 {
	overlap := 0
	// 야간 구간: [-120, 360) = 전일 22:00~당일 06:00, [1320, 1800), [2760, 3240)
	for k := -1; k <= 1; k++ {
		winStart := nightStartMinute + k*minutesPerDay
		winEnd := nightEndMinute + k*minutesPerDay
		lo := startMin
		if winStart > lo {
			lo = winStart
		}
		hi := endMin
		if winEnd < hi {
			hi = winEnd
		}
		if hi > lo {
			overlap += hi - lo
		}
	}
	return float64(overlap) / 60.0
}
