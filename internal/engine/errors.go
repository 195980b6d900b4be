package engine

import "fmt"

// FormatError 시간 문자열 형식 오류 ("HH:MM" 파싱 실패)
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("시간 형식 오류 %q: %s", e.Input, e.Reason)
}

// ValidationError 입력값 검증 오류 (음수 시급/시간 등)
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("검증 오류 (%s): %s", e.Field, e.Reason)
}
