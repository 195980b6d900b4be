package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agi040922/HR-Management-sub000/internal/engine"
	"github.com/agi040922/HR-Management-sub000/internal/model"
	"github.com/agi040922/HR-Management-sub000/internal/repository"
)

// ── 내보내기 모듈 비즈니스 에러 ──

var (
	ErrExportEmptySchedule = errors.New("배정된 스케줄이 없습니다")
	ErrExportGenerateFail  = errors.New("파일 생성에 실패했습니다")
)

// ExportService 내보내기 비즈니스 인터페이스
//
// 설계 설명:
//   - 급여 대장 / 주간 스케줄 / 근로계약서는 Excel (.xlsx) 로 내보낸다
//   - 주간 스케줄은 캘린더 구독용 ICS 피드로도 제공한다 (매주 반복 이벤트)
//   - 파일 내용은 bytes.Buffer 로 반환하고 Handler 계층이 응답 헤더를 설정한다
type ExportService interface {
	// ExportPayroll 매장 급여 대장 Excel
	ExportPayroll(ctx context.Context, storeID string, templateID string, callerID string) (*bytes.Buffer, string, error)
	// ExportSchedule 주간 스케줄 격자 Excel (행: 슬롯, 열: 요일)
	ExportSchedule(ctx context.Context, templateID string, callerID string) (*bytes.Buffer, string, error)
	// ExportScheduleICS 주간 스케줄 ICS 피드
	ExportScheduleICS(ctx context.Context, templateID string, callerID string) (*bytes.Buffer, string, error)
	// ExportContract 근로계약서 Excel
	ExportContract(ctx context.Context, contractID string, callerID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo    *repository.Repository
	payroll PayrollService
	logger  *zap.Logger
}

// NewExportService ExportService 인스턴스 생성
func NewExportService(repo *repository.Repository, payroll PayrollService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, payroll: payroll, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportPayroll — 급여 대장 Excel
// ═══════════════════════════════════════════════════════════
//
// 형식: 직원별 1행
//   | 직원 | 시급 | 주간시간 | 기본 총급여 | 주휴수당 | 월 총급여 | 공제 합계 | 실수령액 | 사업주 비용 |

func (s *exportService) ExportPayroll(ctx context.Context, storeID string, templateID string, callerID string) (*bytes.Buffer, string, error) {
	summary, err := s.payroll.StorePayroll(ctx, storeID, templateID, callerID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "급여대장"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "I", 16)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"직원", "시급", "주간시간", "기본 총급여", "주휴수당", "월 총급여", "공제 합계", "실수령액", "사업주 비용"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, 1), h)
		f.SetCellStyle(sheetName, cell(col, 1), cell(col, 1), headerStyle)
	}

	row := 2
	for _, e := range summary.Employees {
		f.SetCellValue(sheetName, cell("A", row), e.EmployeeName)
		f.SetCellValue(sheetName, cell("B", row), e.HourlyWage)
		f.SetCellValue(sheetName, cell("C", row), e.WeeklyHours.Total)
		f.SetCellValue(sheetName, cell("D", row), e.Monthly.GrossSalary.String())
		f.SetCellValue(sheetName, cell("E", row), e.Monthly.HolidayPay.String())
		f.SetCellValue(sheetName, cell("F", row), e.Monthly.TotalSalary.String())
		f.SetCellValue(sheetName, cell("G", row), e.Net.Deductions.Total.String())
		f.SetCellValue(sheetName, cell("H", row), e.Net.NetSalary.String())
		f.SetCellValue(sheetName, cell("I", row), e.EmployerCost)
		row++
	}

	// 합계 행
	f.SetCellValue(sheetName, cell("A", row), "합계")
	f.SetCellValue(sheetName, cell("F", row), summary.TotalGrossSalary)
	f.SetCellValue(sheetName, cell("I", row), summary.TotalEmployerCost)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("급여 대장 Excel 생성 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, fmt.Sprintf("급여대장_%s.xlsx", time.Now().Format("200601")), nil
}

// ═══════════════════════════════════════════════════════════
// ExportSchedule — 주간 스케줄 격자 Excel
// ═══════════════════════════════════════════════════════════
//
// 형식: 행 = 슬롯 시각(전 요일 합집합), 열 = 월~일, 셀 = 배정 직원 이름

func (s *exportService) ExportSchedule(ctx context.Context, templateID string, callerID string) (*bytes.Buffer, string, error) {
	tpl, names, err := s.loadTemplateWithNames(ctx, templateID, callerID)
	if err != nil {
		return nil, "", err
	}
	week := tpl.WeekData.Week()

	// 전 요일 슬롯 시각의 합집합을 행으로 사용
	slotSet := make(map[string]bool)
	for _, day := range week.Days {
		for _, slot := range day.SortedSlots() {
			slotSet[slot] = true
		}
	}
	if len(slotSet) == 0 {
		return nil, "", ErrExportEmptySchedule
	}
	slots := make([]string, 0, len(slotSet))
	for slot := range slotSet {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "주간스케줄"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "H", 18)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	weekdayNames := []string{"월", "화", "수", "목", "금", "토", "일"}
	f.SetCellValue(sheetName, cell("A", 1), "시각")
	f.SetCellStyle(sheetName, cell("A", 1), cell("A", 1), headerStyle)
	for i, name := range weekdayNames {
		col, _ := excelize.ColumnNumberToName(i + 2)
		f.SetCellValue(sheetName, cell(col, 1), name)
		f.SetCellStyle(sheetName, cell(col, 1), cell(col, 1), headerStyle)
	}

	row := 2
	for _, slot := range slots {
		f.SetCellValue(sheetName, cell("A", row), slot)
		for d := 0; d < engine.DaysPerWeek; d++ {
			col, _ := excelize.ColumnNumberToName(d + 2)
			ids := week.Days[d].Slots[slot]
			if len(ids) == 0 {
				f.SetCellValue(sheetName, cell(col, row), "-")
				continue
			}
			text := ""
			for i, id := range ids {
				if i > 0 {
					text += ", "
				}
				text += employeeLabel(names, id)
			}
			f.SetCellValue(sheetName, cell(col, row), text)
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("스케줄 Excel 생성 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, fmt.Sprintf("주간스케줄_%s.xlsx", tpl.Name), nil
}

// ═══════════════════════════════════════════════════════════
// ExportScheduleICS — 캘린더 구독용 ICS 피드
// ═══════════════════════════════════════════════════════════
//
// 직원 × 요일별 연속 슬롯 구간을 하나의 이벤트로 묶고
// FREQ=WEEKLY 반복 규칙을 붙여 매주 반복되는 근무로 표현한다.

func (s *exportService) ExportScheduleICS(ctx context.Context, templateID string, callerID string) (*bytes.Buffer, string, error) {
	tpl, names, err := s.loadTemplateWithNames(ctx, templateID, callerID)
	if err != nil {
		return nil, "", err
	}
	week := tpl.WeekData.Week()

	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		loc = time.FixedZone("KST", 9*60*60)
	}
	now := time.Now().In(loc)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//HR Management//Schedule//KO")

	eventCount := 0
	for d := 0; d < engine.DaysPerWeek; d++ {
		day := week.Days[d]
		for _, run := range shiftRuns(day, week.SlotMinutes) {
			startMin, err := engine.TimeToMinutes(run.start)
			if err != nil {
				continue
			}
			endMin := startMin + run.slots*week.SlotMinutes
			dayDate := nextWeekday(now, d)

			start := time.Date(dayDate.Year(), dayDate.Month(), dayDate.Day(), startMin/60, startMin%60, 0, 0, loc)
			end := start.Add(time.Duration(endMin-startMin) * time.Minute)

			uid := fmt.Sprintf("%s-%d-%d-%s@hr-management", tpl.TemplateID, run.employeeID, d, run.start)
			evt := cal.AddEvent(uid)
			evt.SetCreatedTime(now)
			evt.SetDtStampTime(now)
			evt.SetStartAt(start)
			evt.SetEndAt(end)
			evt.SetSummary(fmt.Sprintf("%s 근무", employeeLabel(names, run.employeeID)))
			evt.AddRrule("FREQ=WEEKLY")
			eventCount++
		}
	}
	if eventCount == 0 {
		return nil, "", ErrExportEmptySchedule
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, fmt.Sprintf("주간스케줄_%s.ics", tpl.Name), nil
}

// ═══════════════════════════════════════════════════════════
// ExportContract — 근로계약서 Excel
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportContract(ctx context.Context, contractID string, callerID string) (*bytes.Buffer, string, error) {
	c, err := s.repo.Contract.GetByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrContractNotFound
		}
		s.logger.Error("근로계약 조회 실패", zap.String("contract_id", contractID), zap.Error(err))
		return nil, "", err
	}

	store, err := s.repo.Store.GetByID(ctx, c.StoreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrStoreNotFound
		}
		return nil, "", err
	}
	if store.OwnerID != callerID {
		return nil, "", ErrStoreForbidden
	}

	employeeName := ""
	if c.Employee != nil {
		employeeName = c.Employee.Name
	}
	endDate := "기간의 정함 없음"
	if c.EndDate != nil {
		endDate = c.EndDate.Format(contractDateLayout)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "근로계약서"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 18)
	f.SetColWidth(sheetName, "B", "B", 40)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	f.SetCellValue(sheetName, "A1", "표준근로계약서")
	f.MergeCell(sheetName, "A1", "B1")
	f.SetCellStyle(sheetName, "A1", "B1", titleStyle)

	rows := [][2]string{
		{"사업장", store.Name},
		{"근로자", employeeName},
		{"근무 장소", c.Workplace},
		{"업무 내용", c.Duties},
		{"계약 시작일", c.StartDate.Format(contractDateLayout)},
		{"계약 종료일", endDate},
		{"소정근로시간", fmt.Sprintf("주 %.1f시간", c.WeeklyHours)},
		{"시급", fmt.Sprintf("%d원", c.HourlyWage)},
		{"계약 상태", c.Status},
	}
	for i, r := range rows {
		f.SetCellValue(sheetName, cell("A", i+2), r[0])
		f.SetCellValue(sheetName, cell("B", i+2), r[1])
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("근로계약서 Excel 생성 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, fmt.Sprintf("근로계약서_%s.xlsx", employeeName), nil
}

// ── 내부 헬퍼 ──

// loadTemplateWithNames 템플릿 + 소유권 검증 + 직원 이름 맵
func (s *exportService) loadTemplateWithNames(ctx context.Context, templateID string, callerID string) (*model.WeeklyTemplate, map[int64]string, error) {
	tpl, err := s.repo.Template.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTemplateNotFound
		}
		s.logger.Error("템플릿 조회 실패", zap.String("template_id", templateID), zap.Error(err))
		return nil, nil, err
	}

	store, err := s.repo.Store.GetByID(ctx, tpl.StoreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrStoreNotFound
		}
		return nil, nil, err
	}
	if store.OwnerID != callerID {
		return nil, nil, ErrStoreForbidden
	}

	emps, err := s.repo.Employee.ListByStore(ctx, tpl.StoreID, false)
	if err != nil {
		s.logger.Error("직원 목록 조회 실패", zap.String("store_id", tpl.StoreID), zap.Error(err))
		return nil, nil, err
	}
	names := make(map[int64]string, len(emps))
	for _, emp := range emps {
		names[emp.EmployeeID] = emp.Name
	}
	return tpl, names, nil
}

func employeeLabel(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("직원#%d", id)
}

// shiftRun 직원 1명의 연속 슬롯 구간
type shiftRun struct {
	employeeID int64
	start      string // 첫 슬롯 시각
	slots      int    // 연속 슬롯 수
}

// shiftRuns 요일 내 직원별 연속 배정 구간을 추출
func shiftRuns(day engine.DaySchedule, slotMinutes int) []shiftRun {
	sorted := day.SortedSlots()
	if len(sorted) == 0 {
		return nil
	}

	var runs []shiftRun
	open := make(map[int64]int) // employeeID → runs 인덱스 (진행 중 구간)

	prevMin := -1
	for _, slot := range sorted {
		slotMin, err := engine.TimeToMinutes(slot)
		if err != nil {
			continue
		}
		contiguous := prevMin >= 0 && slotMin == prevMin+slotMinutes

		present := make(map[int64]bool)
		for _, id := range day.Slots[slot] {
			present[id] = true
			if idx, ok := open[id]; ok && contiguous {
				runs[idx].slots++
				continue
			}
			runs = append(runs, shiftRun{employeeID: id, start: slot, slots: 1})
			open[id] = len(runs) - 1
		}
		// 이번 슬롯에 없는 직원의 구간은 종료
		for id := range open {
			if !present[id] {
				delete(open, id)
			}
		}
		prevMin = slotMin
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].start != runs[j].start {
			return runs[i].start < runs[j].start
		}
		return runs[i].employeeID < runs[j].employeeID
	})
	return runs
}

// nextWeekday 오늘 이후 가장 가까운 대상 요일 (월=0 기준)
func nextWeekday(now time.Time, day int) time.Time {
	// time.Weekday 는 일요일=0 이므로 월요일=0 체계로 변환
	current := (int(now.Weekday()) + 6) % 7
	delta := (day - current + 7) % 7
	return now.AddDate(0, 0, delta)
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
