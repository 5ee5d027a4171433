package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// Request модель запроса на бронирование тренинга с выбранным тренером
type Request struct {
	OnboardingID int64               // ID онбординга мерчанта
	TrainerID    int64               // ID выбранного тренера
	Date         time.Time           // Дата тренинга (без времени)
	Bucket       domain.TimeBucket   // Время из каталога (например, "09:00")
	Mode         domain.TrainingMode // Пусто - берется из онбординга
	Location     string              // Пусто - берется из онбординга (для onsite)
	Languages    []domain.Language   // Пусто - берутся из онбординга
}

// Response модель ответа с созданным слотом
type Response struct {
	ID                int64               // ID слота
	OnboardingID      int64               // ID онбординга
	TrainerID         int64               // ID тренера
	TrainerName       string              // Имя тренера
	Date              time.Time           // Дата тренинга
	Bucket            domain.TimeBucket   // Время начала
	Mode              domain.TrainingMode // remote | onsite
	Location          *string             // Локация (только onsite)
	RequiredLanguages []domain.Language   // Требуемые языки
	Status            domain.SlotStatus   // booked

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newResponse(slot *domain.TrainingSlot, trainer *domain.Trainer) *Response {
	return &Response{
		ID:                slot.ID,
		OnboardingID:      slot.OnboardingID,
		TrainerID:         slot.TrainerID,
		TrainerName:       trainer.Name,
		Date:              slot.Date,
		Bucket:            slot.Bucket,
		Mode:              slot.Mode,
		Location:          slot.Location,
		RequiredLanguages: slot.RequiredLanguages,
		Status:            slot.Status,
		CreatedAt:         slot.CreatedAt,
		UpdatedAt:         slot.UpdatedAt,
	}
}
