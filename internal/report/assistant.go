package report

import (
	"fmt"
	"strings"

	"github.com/picksplaydoit-ai/superappprofe/internal/course"
)

// QuickAction is a canned question offered next to the assistant prompt.
type QuickAction struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

var QuickActions = []QuickAction{
	{Key: "risk", Label: "Analizar Riesgos", Prompt: "¿Qué alumnos están en riesgo de reprobar según sus notas y qué les falta?"},
	{Key: "dynamic", Label: "Sugerir Dinámica", Prompt: "Sugiere una actividad creativa para este grupo que ayude a mejorar la participación."},
	{Key: "monthly", Label: "Resumen Mensual", Prompt: "Dame un resumen ejecutivo del progreso del grupo en el último periodo."},
}

// FindQuickAction looks an action up by key or label, ignoring case.
func FindQuickAction(key string) (QuickAction, bool) {
	for _, qa := range QuickActions {
		if strings.EqualFold(qa.Key, key) || strings.EqualFold(qa.Label, key) {
			return qa, true
		}
	}
	return QuickAction{}, false
}

// RawAverage is the plain mean of the stored grade values of a student,
// without normalisation or rubric weights. No grades gives 0.
func RawAverage(c course.Course, studentID string) float64 {
	sum, n := 0.0, 0
	for _, g := range c.Grades {
		if g.StudentID == studentID {
			sum += g.Value
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// AssistantContext renders the course summary handed to a teaching assistant
// model as its system instruction. Students and activities keep roster order.
func AssistantContext(c course.Course) string {
	var b strings.Builder
	b.WriteString("Eres un Asistente Pedagógico Experto integrado en la app EduPro Manager.\n")
	b.WriteString("DATOS DEL CURSO ACTUAL:\n")
	fmt.Fprintf(&b, "Nombre: %s\n", c.Name)
	fmt.Fprintf(&b, "Grupo: %s\n", c.GroupName)

	b.WriteString("Alumnos y su estado actual:\n")
	for _, s := range c.Students {
		fmt.Fprintf(&b, "- %s: Promedio actual %.1f\n", s.Name, RawAverage(c, s.ID))
	}
	b.WriteString("Actividades registradas:\n")
	for _, a := range c.Activities {
		fmt.Fprintf(&b, "- %s (%s)\n", a.Name, a.GradingType)
	}
	fmt.Fprintf(&b, "Rúbrica: Mínimo asistencia %g%%, Mínimo nota %g.\n", c.Rubric.MinAttendance, c.Rubric.MinGrade)

	b.WriteString("\nInstrucciones:\n")
	b.WriteString("1. Responde de forma profesional, motivadora y concisa.\n")
	b.WriteString("2. Usa los nombres de los alumnos si es necesario.\n")
	b.WriteString("3. Sugiere estrategias basadas en datos.\n")
	b.WriteString("4. Si no hay datos suficientes, indícalo amablemente.\n")
	return b.String()
}
