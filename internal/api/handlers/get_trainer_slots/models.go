package get_trainer_slots

import (
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	"github.com/m04kA/SMC-TrainingService/internal/service/slots/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(trainerID int64, fromStr, toStr, statusStr string) (*models.ListByTrainerRequest, error) {
	req := &models.ListByTrainerRequest{TrainerID: trainerID}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &to
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
