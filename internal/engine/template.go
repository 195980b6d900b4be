package engine

import "sort"

// Weekday 요일 (월요일 = 0)
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek 주당 일수
const DaysPerWeek = 7

// Valid 요일 인덱스가 0-6 범위인지 검사
func (d Weekday) Valid() bool { return d >= Monday && d <= Sunday }

// BreakPeriod 휴게시간 구간 [Start, End)
type BreakPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Name  string `json:"name,omitempty"`
}

// DaySchedule 하루 영업 스케줄
// Slots 는 슬롯 라벨("09:00" 등) → 배정된 직원 ID 목록 매핑이다.
// 불변식: 슬롯 라벨은 영업시간 내에 있고 어떤 휴게시간에도 속하지 않는다.
type DaySchedule struct {
	Open      bool               `json:"is_open"`
	OpenTime  string             `json:"open_time,omitempty"`
	CloseTime string             `json:"close_time,omitempty"`
	Breaks    []BreakPeriod      `json:"break_periods"`
	Slots     map[string][]int64 `json:"time_slots"`
}

// Week 주간 스케줄 템플릿 값 타입
// 모든 변경 연산은 수정된 복사본을 반환하며 원본을 바꾸지 않는다.
type Week struct {
	SlotMinutes int                      `json:"slot_minutes"`
	Days        [DaysPerWeek]DaySchedule `json:"days"`
}

// NewDaySchedule 기본 하루 스케줄 생성
// 휴무일이면 영업시간/휴게시간/슬롯을 모두 비운다.
func NewDaySchedule(open bool, openTime, closeTime string) DaySchedule {
	if !open {
		return DaySchedule{
			Open:   false,
			Breaks: []BreakPeriod{},
			Slots:  map[string][]int64{},
		}
	}
	return DaySchedule{
		Open:      true,
		OpenTime:  openTime,
		CloseTime: closeTime,
		Breaks:    []BreakPeriod{},
		Slots:     map[string][]int64{},
	}
}

// NewWeek 모든 요일이 휴무인 주간 템플릿 생성
func NewWeek(slotMinutes int) Week {
	w := Week{SlotMinutes: slotMinutes}
	for d := range w.Days {
		w.Days[d] = NewDaySchedule(false, "", "")
	}
	return w
}

// WithOperatingHours 특정 요일의 영업시간 변경
// 휴무로 바꾸면 슬롯 배정을 전부 비운다. 영업시간을 바꾸면 유효 슬롯 집합을
// 재생성하고, 더 이상 유효하지 않거나 휴게시간에 속하게 된 배정을 제거한다.
func (w Week) WithOperatingHours(day Weekday, open bool, openTime, closeTime string) (Week, error) {
	if !day.Valid() {
		return w, &ValidationError{Field: "day", Reason: "요일 인덱스는 0-6 범위여야 합니다"}
	}

	next := w.clone()

	if !open {
		next.Days[day] = NewDaySchedule(false, "", "")
		return next, nil
	}

	if _, err := TimeToMinutes(openTime); err != nil {
		return w, err
	}
	if _, err := TimeToMinutes(closeTime); err != nil {
		return w, err
	}

	prev := next.Days[day]
	d := NewDaySchedule(true, openTime, closeTime)
	d.Breaks = append([]BreakPeriod{}, prev.Breaks...)

	valid, err := validSlotSet(d, w.SlotMinutes)
	if err != nil {
		return w, err
	}
	for slot, ids := range prev.Slots {
		if valid[slot] {
			d.Slots[slot] = append([]int64{}, ids...)
		}
	}

	next.Days[day] = d
	return next, nil
}

// WithBreaks 특정 요일의 휴게시간 변경
// 새 휴게시간에 속하게 된 슬롯 배정을 모두 제거한다. 휴무일은 무시한다.
func (w Week) WithBreaks(day Weekday, breaks []BreakPeriod) (Week, error) {
	if !day.Valid() {
		return w, &ValidationError{Field: "day", Reason: "요일 인덱스는 0-6 범위여야 합니다"}
	}

	next := w.clone()
	d := next.Days[day]
	if !d.Open {
		return next, nil
	}

	for _, b := range breaks {
		if _, err := TimeToMinutes(b.Start); err != nil {
			return w, err
		}
		if _, err := TimeToMinutes(b.End); err != nil {
			return w, err
		}
	}

	d.Breaks = append([]BreakPeriod{}, breaks...)

	pruned := map[string][]int64{}
	for slot, ids := range d.Slots {
		if !IsBreakTime(slot, breaks) {
			pruned[slot] = ids
		}
	}
	d.Slots = pruned

	next.Days[day] = d
	return next, nil
}

// Assign 직원을 슬롯에 배정 (멱등)
// 휴무일, 휴게시간 슬롯, 영업시간 밖 슬롯이면 템플릿을 바꾸지 않고 그대로 반환한다.
func (w Week) Assign(day Weekday, slot string, employeeID int64) Week {
	if !day.Valid() {
		return w
	}
	d := w.Days[day]
	if !d.Open || !w.slotInBounds(d, slot) || IsBreakTime(slot, d.Breaks) {
		return w
	}

	for _, id := range d.Slots[slot] {
		if id == employeeID {
			return w // 이미 배정됨
		}
	}

	next := w.clone()
	nd := next.Days[day]
	nd.Slots[slot] = append(nd.Slots[slot], employeeID)
	next.Days[day] = nd
	return next
}

// Unassign 슬롯에서 직원 배정 해제 (멱등)
func (w Week) Unassign(day Weekday, slot string, employeeID int64) Week {
	if !day.Valid() {
		return w
	}
	ids, ok := w.Days[day].Slots[slot]
	if !ok {
		return w
	}

	found := false
	for _, id := range ids {
		if id == employeeID {
			found = true
			break
		}
	}
	if !found {
		return w
	}

	next := w.clone()
	nd := next.Days[day]
	remaining := make([]int64, 0, len(ids)-1)
	for _, id := range nd.Slots[slot] {
		if id != employeeID {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) == 0 {
		delete(nd.Slots, slot)
	} else {
		nd.Slots[slot] = remaining
	}
	next.Days[day] = nd
	return next
}

// EmployeeIDs 템플릿에 배정된 전체 직원 ID 목록 (오름차순, 중복 제거)
func (w Week) EmployeeIDs() []int64 {
	seen := map[int64]bool{}
	var ids []int64
	for _, d := range w.Days {
		for _, slotIDs := range d.Slots {
			for _, id := range slotIDs {
				if !seen[id] {
					seen[id] = true
					ids = append(ids, id)
				}
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedSlots 배정이 있는 슬롯 라벨을 시간순으로 반환
func (d DaySchedule) SortedSlots() []string {
	labels := make([]string, 0, len(d.Slots))
	for slot := range d.Slots {
		labels = append(labels, slot)
	}
	sort.Strings(labels)
	return labels
}

// ── 내부 헬퍼 ──

// slotInBounds 슬롯이 영업시간 [open, close) 안의 유효한 경계에 있는지 검사
func (w Week) slotInBounds(d DaySchedule, slot string) bool {
	slotMin, err := TimeToMinutes(slot)
	if err != nil {
		return false
	}
	openMin, err := TimeToMinutes(d.OpenTime)
	if err != nil {
		return false
	}
	closeMin, err := TimeToMinutes(d.CloseTime)
	if err != nil {
		return false
	}
	if slotMin < openMin || slotMin >= closeMin {
		return false
	}
	// 슬롯 라벨은 템플릿 간격에 정렬되어 있어야 한다
	if w.SlotMinutes > 0 && (slotMin-openMin)%w.SlotMinutes != 0 {
		return false
	}
	return true
}

// validSlotSet 영업시간에서 휴게시간을 제외한 유효 슬롯 집합 생성
func validSlotSet(d DaySchedule, slotMinutes int) (map[string]bool, error) {
	labels, err := GenerateTimeSlots(d.OpenTime, d.CloseTime, slotMinutes)
	if err != nil {
		return nil, err
	}
	valid := make(map[string]bool, len(labels))
	for _, label := range labels {
		if !IsBreakTime(label, d.Breaks) {
			valid[label] = true
		}
	}
	return valid, nil
}

// clone 깊은 복사본 생성 (값 의미론 보장)
func (w Week) clone() Week {
	next := Week{SlotMinutes: w.SlotMinutes}
	for i, d := range w.Days {
		nd := DaySchedule{
			Open:      d.Open,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
			Breaks:    append([]BreakPeriod{}, d.Breaks...),
			Slots:     make(map[string][]int64, len(d.Slots)),
		}
		for slot, ids := range d.Slots {
			nd.Slots[slot] = append([]int64{}, ids...)
		}
		next.Days[i] = nd
	}
	return next
}
