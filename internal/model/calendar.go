package model

import "time"

var mainDrawHours = []int{2, 6, 10, 14, 18, 22}

const weekendDrawHour = 20

// NextDrawTime returns the first draw of kind strictly after now, in now's location.
func NextDrawTime(kind DrawKind, now time.Time) (time.Time, error) {
	switch kind {
	case DrawMain:
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		for d := 0; d < 2; d++ {
			base := day.AddDate(0, 0, d)
			for _, h := range mainDrawHours {
				t := base.Add(time.Duration(h) * time.Hour)
				if t.After(now) {
					return t, nil
				}
			}
		}
	case DrawWeekend:
		day := time.Date(now.Year(), now.Month(), now.Day(), weekendDrawHour, 0, 0, 0, now.Location())
		for d := 0; d < 8; d++ {
			t := day.AddDate(0, 0, d)
			wd := t.Weekday()
			if (wd == time.Saturday || wd == time.Sunday) && t.After(now) {
				return t, nil
			}
		}
	case DrawMini:
		t := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), (now.Minute()/30)*30, 0, 0, now.Location())
		return t.Add(30 * time.Minute), nil
	}
	return time.Time{}, ErrInvalidDrawKind
}
