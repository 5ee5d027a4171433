package holidayservice

// Holiday нерабочий день из HolidayService
type Holiday struct {
	Date string `json:"date"` // "2025-08-31"
	Name string `json:"name"`
}

// HolidaysResponse ответ HolidayService за год и регион
type HolidaysResponse struct {
	Year     int       `json:"year"`
	Region   string    `json:"region"`
	Holidays []Holiday `json:"holidays"`
}
