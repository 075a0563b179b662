package service

import "time"

// Export for testing
func SetAuthClockForTest(svc AuthService, now func() time.Time) {
	svc.(*authService).now = now
}
