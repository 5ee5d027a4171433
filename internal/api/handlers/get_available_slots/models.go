package get_available_slots

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/api/handlers"
	"github.com/m04kA/SMC-TrainingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TrainingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableRangeResponse HTTP response model для периода
type AvailableRangeResponse struct {
	From string                   `json:"from"`
	To   string                   `json:"to"`
	Days []AvailableSlotsResponse `json:"days"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Bucket   string             `json:"bucket"`
	Trainers []AvailableTrainer `json:"trainers"`
}

// AvailableTrainer свободный подходящий тренер
type AvailableTrainer struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Languages []string `json:"languages"`
}

// requirements общие query параметры: mode, location, languages
type requirements struct {
	mode      domain.TrainingMode
	location  string
	languages []domain.Language
}

func parseRequirements(q url.Values) (requirements, error) {
	var req requirements

	mode, err := domain.ParseTrainingMode(strings.TrimSpace(q.Get("mode")))
	if err != nil {
		return req, err
	}
	req.mode = mode
	req.location = strings.TrimSpace(q.Get("location"))

	if raw := handlers.SplitList(q.Get("languages")); len(raw) > 0 {
		languages, err := domain.ParseLanguages(raw)
		if err != nil {
			return req, err
		}
		req.languages = languages
	}
	return req, nil
}

func parseDate(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return date, nil
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(q url.Values) (*getAvailableSlots.Request, error) {
	date, err := parseDate("date", q.Get("date"))
	if err != nil {
		return nil, err
	}
	reqs, err := parseRequirements(q)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:      date,
		Mode:      reqs.mode,
		Location:  reqs.location,
		Languages: reqs.languages,
	}, nil
}

// ToUseCaseRangeRequest создает запрос use case для периода.
// exclude - даты через запятую, которые не нужно рассматривать (праздники).
func ToUseCaseRangeRequest(q url.Values) (*getAvailableSlots.RangeRequest, error) {
	from, err := parseDate("from", q.Get("from"))
	if err != nil {
		return nil, err
	}
	to, err := parseDate("to", q.Get("to"))
	if err != nil {
		return nil, err
	}
	reqs, err := parseRequirements(q)
	if err != nil {
		return nil, err
	}

	var excluded []time.Time
	for _, raw := range handlers.SplitList(q.Get("exclude")) {
		d, err := parseDate("exclude", raw)
		if err != nil {
			return nil, err
		}
		excluded = append(excluded, d)
	}

	return &getAvailableSlots.RangeRequest{
		From:          from,
		To:            to,
		Mode:          reqs.mode,
		Location:      reqs.location,
		Languages:     reqs.languages,
		ExcludedDates: excluded,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		trainers := make([]AvailableTrainer, len(slot.Trainers))
		for j, t := range slot.Trainers {
			languages := make([]string, len(t.Languages))
			for k, l := range t.Languages {
				languages[k] = string(l)
			}
			trainers[j] = AvailableTrainer{ID: t.ID, Name: t.Name, Languages: languages}
		}
		slots[i] = AvailableSlot{Bucket: slot.Bucket.String(), Trainers: trainers}
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

// FromUseCaseRangeResponse конвертирует ответ use case для периода
func FromUseCaseRangeResponse(resp *getAvailableSlots.RangeResponse) *AvailableRangeResponse {
	days := make([]AvailableSlotsResponse, len(resp.Days))
	for i := range resp.Days {
		days[i] = *FromUseCaseResponse(&resp.Days[i])
	}
	return &AvailableRangeResponse{
		From: resp.From.Format(domain.DateFormat),
		To:   resp.To.Format(domain.DateFormat),
		Days: days,
	}
}
