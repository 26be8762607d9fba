package service

import "time"

// SetStudyClock はテストから学習セッションの時刻を差し替える
func SetStudyClock(s StudyService, now func() time.Time) {
	s.(*studyService).now = now
}
