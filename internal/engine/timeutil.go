// Package engine 급여·스케줄 계산 엔진.
//
// 주간 스케줄 템플릿을 근로시간으로 환산하고, 2025년 한국 노동법 기준
// (최저임금, 주휴수당, 연장/야간 가산, 4대보험, 간이 소득세)으로
// 급여와 사업주 부담 비용을 산출하며, 비용 절감 제안을 생성한다.
//
// 엔진의 모든 함수는 순수 함수다: 입출력은 평범한 값이고,
// 네트워크/저장소 호출이나 공유 상태 변경이 없다.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes "HH:MM" 문자열을 자정 기준 분 단위로 변환
func TimeToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, &FormatError{Input: s, Reason: "HH:MM 형식이어야 합니다"}
	}
	if len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, &FormatError{Input: s, Reason: "시/분은 두 자리여야 합니다"}
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &FormatError{Input: s, Reason: "시(hour)가 숫자가 아닙니다"}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &FormatError{Input: s, Reason: "분(minute)이 숫자가 아닙니다"}
	}

	if hour < 0 || hour > 23 {
		return 0, &FormatError{Input: s, Reason: "시(hour)는 00-23 범위여야 합니다"}
	}
	if minute < 0 || minute > 59 {
		return 0, &FormatError{Input: s, Reason: "분(minute)은 00-59 범위여야 합니다"}
	}

	return hour*60 + minute, nil
}

// MinutesToTime 분 단위를 "HH:MM" 문자열로 변환
// 1440분(24시간) 이상 값은 정규화하지 않는다. 익일 롤오버 처리는 호출자 책임.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateTimeSlots [start, end) 구간을 stepMinutes 간격으로 나눈 슬롯 라벨 목록 생성
// start >= end 면 빈 목록을 반환한다.
func GenerateTimeSlots(start, end string, stepMinutes int) ([]string, error) {
	if stepMinutes <= 0 {
		return nil, &ValidationError{Field: "stepMinutes", Reason: "슬롯 간격은 0보다 커야 합니다"}
	}

	startMin, err := TimeToMinutes(start)
	if err != nil {
		return nil, err
	}
	endMin, err := TimeToMinutes(end)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	for m := startMin; m < endMin; m += stepMinutes {
		slots = append(slots, MinutesToTime(m))
	}
	return slots, nil
}

// IsBreakTime 슬롯 시작 시각이 휴게시간 [start, end) 구간 중 하나에 속하는지 검사
// 휴게시간끼리의 중첩 여부는 검사하지 않는다(호출자 책임).
// 파싱 불가능한 입력은 false 로 취급한다.
func IsBreakTime(slot string, breaks []BreakPeriod) bool {
	slotMin, err := TimeToMinutes(slot)
	if err != nil {
		return false
	}

	for _, b := range breaks {
		startMin, err := TimeToMinutes(b.Start)
		if err != nil {
			continue
		}
		endMin, err := TimeToMinutes(b.End)
		if err != nil {
			continue
		}
		if slotMin >= startMin && slotMin < endMin {
			return true
		}
	}
	return false
}
