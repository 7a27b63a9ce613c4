package wizard

const (
	payLabel        = "Pay & Confirm"
	processingLabel = "Processing Payment..."
)

// View describes the single visible step and the state of its controls.
type View struct {
	Step               Step            `json:"step"`
	Overlay            *DoctorSnapshot `json:"overlay,omitempty"`
	Slots              []SlotView      `json:"slots,omitempty"`
	ConfirmSlotEnabled bool            `json:"confirmSlotEnabled"`
	PayEnabled         bool            `json:"payEnabled"`
	PayLabel           string          `json:"payLabel,omitempty"`
	Summary            *Summary        `json:"summary,omitempty"`
	TransactionID      string          `json:"transactionId,omitempty"`
}

type SlotView struct {
	Time     string `json:"time"`
	Selected bool   `json:"selected"`
}

type Summary struct {
	PatientName    string `json:"patientName"`
	Symptoms       string `json:"symptoms"`
	DoctorName     string `json:"doctorName"`
	Specialization string `json:"specialization"`
	Date           string `json:"date"`
	TimeSlot       string `json:"timeSlot"`
	Fee            string `json:"fee"`
}

func Render(s Session) View {
	v := View{Step: s.Step}

	switch s.Step {
	case StepDoctorSelection:
		v.Overlay = s.Overlay
	case StepSlotSelection:
		if s.Date != "" {
			v.Slots = make([]SlotView, len(Slots))
			for i, t := range Slots {
				v.Slots[i] = SlotView{Time: t, Selected: t == s.TimeSlot}
			}
		}
		v.ConfirmSlotEnabled = s.Date != "" && s.TimeSlot != ""
	case StepSummary, StepPaymentSimulation:
		v.Summary = summaryOf(s)
		v.PayEnabled = !s.Processing
		v.PayLabel = payLabel
		if s.Processing {
			v.PayLabel = processingLabel
		}
	case StepConfirmation:
		v.Summary = summaryOf(s)
		v.TransactionID = s.TransactionID
	}
	return v
}

func summaryOf(s Session) *Summary {
	sum := &Summary{
		PatientName: s.Patient.Name,
		Symptoms:    s.Patient.Symptoms,
		Date:        s.Date,
		TimeSlot:    s.TimeSlot,
		Fee:         FormatFee(s.Fee),
	}
	if s.Doctor != nil {
		sum.DoctorName = s.Doctor.Name
		sum.Specialization = s.Doctor.Specialization
	}
	return sum
}

// SelectedSlots counts the slots marked selected in the view.
func (v View) SelectedSlots() int {
	n := 0
	for _, s := range v.Slots {
		if s.Selected {
			n++
		}
	}
	return n
}
