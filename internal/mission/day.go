package mission

import "time"

var dayThemes = [7]string{
	"🗺️ 탐험가의 날",
	"🏗️ 건축가의 날",
	"🎨 크리에이터의 날",
	"⚔️ 전사의 날",
	"🎉 보상의 날",
	"🌿 자유의 날",
	"😴 휴식의 날",
}

var weekdayNames = [7]string{"월", "화", "수", "목", "금", "토", "일"}

// weekdayIndex maps t to 0=Monday..6=Sunday.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DayTheme returns the fixed label for t's weekday.
func DayTheme(t time.Time) string { return dayThemes[weekdayIndex(t)] }

// WeekdayName returns the one-syllable Korean weekday name.
func WeekdayName(t time.Time) string { return weekdayNames[weekdayIndex(t)] }

// IsRestDay reports whether t is a day without missions.
func IsRestDay(t time.Time) bool { return t.Weekday() == time.Sunday }

// DateLabel formats t as "YYYY년 MM월 DD일".
func DateLabel(t time.Time) string { return t.Format("2006년 01월 02일") }

// Caption is the one-line "today" banner shown above missions.
func Caption(t time.Time) string {
	return DateLabel(t) + " " + WeekdayName(t) + "요일 | " + DayTheme(t)
}
