package validate

import "testing"

func validReportForm() ReportForm {
	return ReportForm{
		ProjectName: "Site A",
		Location:    "1 Main St",
		Weather:     "sunny",
		Temperature: 21.5,
		Reporter:    "Sato",
		Supervisor:  "Ito",
		WorkStart:   "08:00",
		WorkEnd:     "17:00",
		Planned:     50,
		Actual:      40,
	}
}

func TestCheckValidReport(t *testing.T) {
	if errs := Check(validReportForm()); errs != nil {
		t.Fatalf("valid form rejected: %v", errs)
	}
}

func TestCheckMissingFields(t *testing.T) {
	form := validReportForm()
	form.ProjectName = ""
	form.Reporter = ""

	errs := Check(form)
	if errs == nil {
		t.Fatal("expected errors")
	}
	if errs["ProjectName"] != "required" {
		t.Fatalf("ProjectName: %q", errs["ProjectName"])
	}
	if errs["Reporter"] != "required" {
		t.Fatalf("Reporter: %q", errs["Reporter"])
	}
	if _, ok := errs["Location"]; ok {
		t.Fatal("valid field flagged")
	}
}

func TestCheckTemperatureRange(t *testing.T) {
	form := validReportForm()
	form.Temperature = 80

	errs := Check(form)
	if errs["Temperature"] == "" {
		t.Fatalf("out-of-range temperature accepted: %v", errs)
	}

	form.Temperature = -50
	if errs := Check(form); errs != nil {
		t.Fatalf("boundary value rejected: %v", errs)
	}
}

func TestCheckProgressRange(t *testing.T) {
	form := validReportForm()
	form.Actual = 120

	errs := Check(form)
	if errs["Actual"] != "must be at most 100" {
		t.Fatalf("Actual: %q", errs["Actual"])
	}
}

func TestCheckChangeForm(t *testing.T) {
	form := ChangeForm{
		Category:    "equipment",
		Description: "crane swapped",
		Impact:      "caution",
		ReportedBy:  "Sato",
	}
	if errs := Check(form); errs != nil {
		t.Fatalf("valid change rejected: %v", errs)
	}

	form.Category = "weather" // not in the closed set
	errs := Check(form)
	if errs["Category"] != "must be one of: environment equipment neighbor other" {
		t.Fatalf("Category: %q", errs["Category"])
	}
}

func TestCheckConcernForm(t *testing.T) {
	form := ConcernForm{
		Category:          "safety",
		Description:       "missing guardrail",
		RiskLevel:         "urgent",
		PotentialImpact:   "fall hazard",
		RecommendedAction: "install guardrail",
		ReportedBy:        "Sato",
	}
	if errs := Check(form); errs != nil {
		t.Fatalf("valid concern rejected: %v", errs)
	}

	form.RiskLevel = "extreme"
	if errs := Check(form); errs["RiskLevel"] == "" {
		t.Fatal("bad risk level accepted")
	}
}

func TestCheckClientRequestForm(t *testing.T) {
	form := ClientRequestForm{
		Type:     "change",
		Content:  "move the entrance",
		Priority: "high",
		Status:   "open",
	}
	if errs := Check(form); errs != nil {
		t.Fatalf("valid request rejected: %v", errs)
	}
}

func TestCheckWorkerForm(t *testing.T) {
	form := WorkerForm{Name: "Sato", Role: "carpenter", HoursWorked: 8}
	if errs := Check(form); errs != nil {
		t.Fatalf("valid worker rejected: %v", errs)
	}

	form.HoursWorked = 30
	if errs := Check(form); errs["HoursWorked"] != "must be at most 24" {
		t.Fatalf("HoursWorked: %q", errs["HoursWorked"])
	}
}

func TestCheckProjectForm(t *testing.T) {
	form := ProjectForm{Name: "Site A", Location: "1 Main St", Client: "Acme", Supervisor: "Ito"}
	if errs := Check(form); errs != nil {
		t.Fatalf("valid project rejected: %v", errs)
	}

	if errs := Check(ProjectForm{}); len(errs) != 4 {
		t.Fatalf("expected 4 errors on empty form, got %v", errs)
	}
}
