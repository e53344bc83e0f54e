package wizard

import (
	"time"

	"artisan-backend/internal/app/configurator"
	"artisan-backend/internal/app/ds"
)

// Step - шаг мастера онбординга
type Step string

const (
	StepRegister   Step = "register"
	StepCompliance Step = "compliance"
	StepBanking    Step = "banking"
	StepProfile    Step = "profile"
	StepSelect     Step = "select"
	StepConfigure  Step = "configure"
	StepProduction Step = "production"
	StepPreview    Step = "preview"
	StepSubmitted  Step = "submitted"
)

var steps = []Step{
	StepRegister,
	StepCompliance,
	StepBanking,
	StepProfile,
	StepSelect,
	StepConfigure,
	StepProduction,
	StepPreview,
	StepSubmitted,
}

// Steps возвращает шаги в порядке прохождения
func Steps() []Step {
	return append([]Step(nil), steps...)
}

func (s Step) index() int {
	for i, st := range steps {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Step) Valid() bool {
	return s.index() >= 0
}

// CanTransition - вперёд можно только на следующий шаг, назад - на любой
func CanTransition(from, to Step) bool {
	fi, ti := from.index(), to.index()
	if fi < 0 || ti < 0 {
		return false
	}
	return ti <= fi+1
}

// RegistrationData - данные шага register
type RegistrationData struct {
	Type      string     `json:"type"`
	LegalName string     `json:"legal_name"`
	Industry  string     `json:"industry"`
	Contact   ds.Contact `json:"contact"`
}

// State - серверное состояние мастера одного ремесленника.
// Version растёт на каждом сохранении, запись со старой версией отклоняется.
type State struct {
	Version          int64                `json:"version"`
	ArtisanID        string               `json:"artisan_id"`
	Step             Step                 `json:"step"`
	Registration     *RegistrationData    `json:"registration,omitempty"`
	Compliance       *ds.Registration     `json:"compliance,omitempty"`
	Banking          *ds.Banking          `json:"banking,omitempty"`
	Industry         string               `json:"industry,omitempty"`
	Product          string               `json:"product,omitempty"`
	Tier             configurator.Tier    `json:"tier,omitempty"`
	Market           string               `json:"market,omitempty"`
	FormValues       configurator.Values  `json:"form_values,omitempty"`
	ProductionInputs *ds.ProductionInputs `json:"production_inputs,omitempty"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func initialState(artisanID string) *State {
	return &State{ArtisanID: artisanID, Step: StepRegister}
}
