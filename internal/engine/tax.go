package engine

import "github.com/shopspring/decimal"

// Tax 원천징수 세액 (소득세 + 지방소득세)
type Tax struct {
	IncomeTax decimal.Decimal `json:"income_tax"`
	LocalTax  decimal.Decimal `json:"local_tax"`
}

// TaxPolicy 세액 계산 전략
// 기본 구현은 간이 정률(3.3%) 방식이며, 국세청 간이세액표 기반 구현으로
// 교체해도 나머지 파이프라인은 수정할 필요가 없다.
type TaxPolicy interface {
	ComputeTax(gross decimal.Decimal) Tax
}

// SimplifiedTaxPolicy 간이 정률 세액 계산
// 소득세 = 총급여 × 3.3%, 지방소득세 = 소득세 × 10%
// 공식 간이세액표가 아닌 근사치이며, 화면에도 "간이 계산" 으로 안내된다.
type SimplifiedTaxPolicy struct{}

var (
	simplifiedIncomeTaxRate = decimal.RequireFromString("0.033")
	localTaxRate            = decimal.RequireFromString("0.1")
)

// ComputeTax 간이 세액 계산 (원 단위 반올림)
func (SimplifiedTaxPolicy) ComputeTax(gross decimal.Decimal) Tax {
	income := gross.Mul(simplifiedIncomeTaxRate).Round(0)
	local := income.Mul(localTaxRate).Round(0)
	return Tax{IncomeTax: income, LocalTax: local}
}
