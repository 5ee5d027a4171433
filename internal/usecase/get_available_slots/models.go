package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// Request модель запроса на получение свободных слотов на дату
type Request struct {
	Date      time.Time           // Дата (без времени)
	Mode      domain.TrainingMode // remote | onsite
	Location  string              // Учитывается только для onsite (опционально)
	Languages []domain.Language   // Достаточно одного общего языка (опционально)
}

// RangeRequest модель запроса на получение свободных слотов за период
type RangeRequest struct {
	From          time.Time
	To            time.Time
	Mode          domain.TrainingMode
	Location      string
	Languages     []domain.Language
	ExcludedDates []time.Time // Праздники, которые вызывающий исключает сам (опционально)
}

// Response модель ответа со списком свободных слотов на дату
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Только слоты, где свободен хотя бы один подходящий тренер
}

// RangeResponse модель ответа со свободными слотами по дням периода
type RangeResponse struct {
	From time.Time
	To   time.Time
	Days []Response // Только рабочие дни, не исключенные вызывающим
}

// Slot модель временного слота
type Slot struct {
	Bucket   domain.TimeBucket // Время начала слота (например, "09:30")
	Trainers []*domain.Trainer // Подходящие и свободные тренеры, в порядке справочника
}
