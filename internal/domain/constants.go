package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxTrainerNameLength = 200
	MaxLocationLength    = 200
	MaxRangeDays         = 62
)

// bucketCatalogue фиксированный список временных слотов тренинга
var bucketCatalogue = [...]TimeBucket{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}
