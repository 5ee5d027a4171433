package auto_assign_booking

import (
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// Request модель запроса на бронирование тренинга с автоматическим выбором тренера
type Request struct {
	OnboardingID int64                    // ID онбординга мерчанта
	Date         time.Time                // Дата тренинга (без времени)
	Bucket       domain.TimeBucket        // Время из каталога (например, "09:00")
	Mode         domain.TrainingMode      // Пусто - берется из онбординга
	Location     string                   // Пусто - берется из онбординга (для onsite)
	Languages    []domain.Language        // Пусто - берутся из онбординга
	Strategy     domain.SelectionStrategy // Пусто - стратегия из конфигурации
}

// Response модель ответа с созданным слотом и назначенным тренером
type Response struct {
	ID                int64
	OnboardingID      int64
	TrainerID         int64
	TrainerName       string
	Date              time.Time
	Bucket            domain.TimeBucket
	Mode              domain.TrainingMode
	Location          *string
	RequiredLanguages []domain.Language
	Status            domain.SlotStatus

	Strategy domain.SelectionStrategy // Примененная стратегия выбора
	PoolSize int                      // Сколько тренеров было свободно и подходило

	CreatedAt time.Time
	UpdatedAt time.Time
}
