package engine

import "github.com/shopspring/decimal"

// ── 2025년 법정 요율 ──

var (
	// WeeksPerMonth 월 평균 주 수
	WeeksPerMonth = decimal.RequireFromString("4.33")

	// 국민연금 (근로자/사업주 각 4.5%)
	nationalPensionRate = decimal.RequireFromString("0.045")

	// 건강보험 (근로자/사업주 각 3.545%)
	healthInsuranceRate = decimal.RequireFromString("0.03545")

	// 고용보험 (근로자 0.9% / 사업주 1.55%)
	employmentRateEmployee = decimal.RequireFromString("0.009")
	employmentRateEmployer = decimal.RequireFromString("0.0155")

	// OvertimeRate 연장근로 가산율 (통상임금의 1.5배)
	OvertimeRate = decimal.RequireFromString("1.5")

	// NightRate 야간근로 가산율
	NightRate = decimal.RequireFromString("1.5")
)

// MinimumWage2025 2025년 시간당 최저임금(원). 운영 환경에서는 설정으로 주입된다.
const MinimumWage2025 int64 = 10030

// InsuranceShare 4대보험 분담분 (원 단위)
type InsuranceShare struct {
	NationalPension     decimal.Decimal `json:"national_pension"`
	HealthInsurance     decimal.Decimal `json:"health_insurance"`
	EmploymentInsurance decimal.Decimal `json:"employment_insurance"`
	Total               decimal.Decimal `json:"total"`
}

// Insurance 근로자/사업주 보험료 내역
type Insurance struct {
	Employee InsuranceShare `json:"employee"`
	Employer InsuranceShare `json:"employer"`
}

// MonthlySalary 월급 산출 결과
// GrossSalary 는 주휴수당을 제외한 기본 총급여이며,
// 주휴수당은 별도 항목으로 분리해 TotalSalary 에 합산한다.
type MonthlySalary struct {
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	TotalWorkingHours float64         `json:"total_working_hours"` // 월 환산 근로시간
	HolidayHours      float64         `json:"holiday_hours"`       // 월 환산 주휴시간
	HolidayPay        decimal.Decimal `json:"holiday_pay"`
	TotalSalary       decimal.Decimal `json:"total_salary"`
}

// Deductions 근로자 부담 공제 내역
type Deductions struct {
	Insurance InsuranceShare  `json:"insurance"`
	IncomeTax decimal.Decimal `json:"income_tax"`
	LocalTax  decimal.Decimal `json:"local_tax"`
	Total     decimal.Decimal `json:"total"`
}

// NetSalary 실수령액 산출 결과
type NetSalary struct {
	GrossSalary decimal.Decimal `json:"gross_salary"`
	Deductions  Deductions      `json:"deductions"`
	NetSalary   decimal.Decimal `json:"net_salary"`
}

// PayrollResult 주간 급여 구성 요소 (최적화 비교용)
type PayrollResult struct {
	RegularPay  decimal.Decimal `json:"regular_pay"`
	OvertimePay decimal.Decimal `json:"overtime_pay"`
	NightPay    decimal.Decimal `json:"night_pay"`
	HolidayPay  decimal.Decimal `json:"holiday_pay"`
	Total       decimal.Decimal `json:"total"`
}

// CalculateMonthlySalary 주간 근로시간을 월급으로 환산
// 월 근로시간 ≈ 주간 근로시간 × 4.33, 기본 총급여 = 월 근로시간 × 시급.
// 주휴수당 대상이면 주당 주휴시간(주간 총시간/5, 최대 8시간)을 별도 합산한다.
func CalculateMonthlySalary(week WeekHours, hourlyWage int64) (MonthlySalary, error) {
	if hourlyWage < 0 {
		return MonthlySalary{}, &ValidationError{Field: "hourlyWage", Reason: "시급은 음수일 수 없습니다"}
	}
	if week.Total < 0 {
		return MonthlySalary{}, &ValidationError{Field: "weeklyHours", Reason: "근로시간은 음수일 수 없습니다"}
	}

	wage := decimal.NewFromInt(hourlyWage)
	weeklyTotal := decimal.NewFromFloat(week.Total)

	monthlyHoursDec := weeklyTotal.Mul(WeeksPerMonth)
	gross := monthlyHoursDec.Mul(wage).Round(0)

	result := MonthlySalary{
		GrossSalary:       gross,
		TotalWorkingHours: monthlyHoursDec.InexactFloat64(),
		HolidayPay:        decimal.Zero,
		TotalSalary:       gross,
	}

	if week.HolidayEligible {
		weeklyHolidayHours := holidayHoursPerWeek(week.Total)
		monthlyHolidayDec := decimal.NewFromFloat(weeklyHolidayHours).Mul(WeeksPerMonth)
		holidayPay := monthlyHolidayDec.Mul(wage).Round(0)

		result.HolidayHours = monthlyHolidayDec.InexactFloat64()
		result.HolidayPay = holidayPay
		result.TotalSalary = gross.Add(holidayPay)
	}

	return result, nil
}

// CalculateInsurance 총급여 기준 4대보험료 산출 (근로자/사업주 분담)
func CalculateInsurance(gross decimal.Decimal) Insurance {
	employee := InsuranceShare{
		NationalPension:     gross.Mul(nationalPensionRate).Round(0),
		HealthInsurance:     gross.Mul(healthInsuranceRate).Round(0),
		EmploymentInsurance: gross.Mul(employmentRateEmployee).Round(0),
	}
	employee.Total = employee.NationalPension.Add(employee.HealthInsurance).Add(employee.EmploymentInsurance)

	employer := InsuranceShare{
		NationalPension:     gross.Mul(nationalPensionRate).Round(0),
		HealthInsurance:     gross.Mul(healthInsuranceRate).Round(0),
		EmploymentInsurance: gross.Mul(employmentRateEmployer).Round(0),
	}
	employer.Total = employer.NationalPension.Add(employer.HealthInsurance).Add(employer.EmploymentInsurance)

	return Insurance{Employee: employee, Employer: employer}
}

// CalculateNetSalary 총급여에서 근로자 부담 공제(보험료 + 세금)를 차감한 실수령액
func CalculateNetSalary(gross decimal.Decimal, policy TaxPolicy) (NetSalary, error) {
	if gross.IsNegative() {
		return NetSalary{}, &ValidationError{Field: "grossSalary", Reason: "총급여는 음수일 수 없습니다"}
	}
	if policy == nil {
		policy = SimplifiedTaxPolicy{}
	}

	ins := CalculateInsurance(gross)
	tax := policy.ComputeTax(gross)

	deductions := Deductions{
		Insurance: ins.Employee,
		IncomeTax: tax.IncomeTax,
		LocalTax:  tax.LocalTax,
	}
	deductions.Total = ins.Employee.Total.Add(tax.IncomeTax).Add(tax.LocalTax)

	return NetSalary{
		GrossSalary: gross,
		Deductions:  deductions,
		NetSalary:   gross.Sub(deductions.Total),
	}, nil
}

// CalculateEmployerCost 사업주 총 부담 비용 (총급여 + 사업주 부담 보험료)
func CalculateEmployerCost(gross decimal.Decimal) decimal.Decimal {
	ins := CalculateInsurance(gross)
	return gross.Add(ins.Employer.Total)
}

// CalculatePayroll 주간 근로시간 버킷을 급여 구성 요소로 환산
// 기본급 + 연장수당(×1.5) + 야간수당(×1.5) + 주휴수당을 합산한다.
// 최적화 엔진이 현재/가상 스케줄 비용 비교에 사용한다.
func CalculatePayroll(total, regular, overtime, night float64, hourlyWage int64, holidayEligible bool) (PayrollResult, error) {
	if hourlyWage < 0 {
		return PayrollResult{}, &ValidationError{Field: "hourlyWage", Reason: "시급은 음수일 수 없습니다"}
	}
	if total < 0 || regular < 0 || overtime < 0 || night < 0 {
		return PayrollResult{}, &ValidationError{Field: "hours", Reason: "근로시간은 음수일 수 없습니다"}
	}

	wage := decimal.NewFromInt(hourlyWage)

	regularPay := decimal.NewFromFloat(regular).Mul(wage).Round(0)
	overtimePay := decimal.NewFromFloat(overtime).Mul(wage).Mul(OvertimeRate).Round(0)
	nightPay := decimal.NewFromFloat(night).Mul(wage).Mul(NightRate).Round(0)

	holidayPay := decimal.Zero
	if holidayEligible {
		holidayPay = decimal.NewFromFloat(holidayHoursPerWeek(total)).Mul(wage).Round(0)
	}

	return PayrollResult{
		RegularPay:  regularPay,
		OvertimePay: overtimePay,
		NightPay:    nightPay,
		HolidayPay:  holidayPay,
		Total:       regularPay.Add(overtimePay).Add(nightPay).Add(holidayPay),
	}, nil
}

// holidayHoursPerWeek 주당 주휴시간: 주간 총시간/5 (주 40시간 기준 최대 8시간)
func holidayHoursPerWeek(weeklyTotal float64) float64 {
	capped := weeklyTotal
	if capped > 40 {
		capped = 40
	}
	return capped / 5.0
}
