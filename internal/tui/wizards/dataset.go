// Package wizards implements multi-step interactive TUI flows.
package wizards

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aumai/datacommons/internal/tui"
	"github.com/aumai/datacommons/internal/tui/components"
	"github.com/aumai/datacommons/pkg/datacommons"
)

// datasetStep identifies the current step of the dataset wizard.
type datasetStep int

const (
	datasetStepFormat datasetStep = iota
	datasetStepFields
	datasetStepConfirm
)

// Indices into the field slice. Order is the on-screen order.
const (
	fieldID = iota
	fieldName
	fieldDescription
	fieldLicense
	fieldTags
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldID:          "Dataset ID",
	fieldName:        "Name",
	fieldDescription: "Description",
	fieldLicense:     "License",
	fieldTags:        "Tags",
}

var formatDescriptions = map[datacommons.DatasetFormat]string{
	datacommons.FormatJSONL:   "Newline-delimited JSON records",
	datacommons.FormatCSV:     "Comma-separated values with a header row",
	datacommons.FormatParquet: "Columnar storage for analytical workloads",
	datacommons.FormatArrow:   "Arrow IPC columnar files",
}

// DatasetResult carries the wizard outcome back to the caller.
type DatasetResult struct {
	Cancelled bool
	Record    datacommons.DatasetMetadata
}

// DatasetWizard collects dataset metadata interactively: format
// selection, descriptive fields, then a confirmation summary.
type DatasetWizard struct {
	step datasetStep
	keys tui.KeyMap

	formats   []datacommons.DatasetFormat
	formatIdx int

	fields     []components.TextField
	focusIndex int

	validationErr string

	record    datacommons.DatasetMetadata
	cancelled bool
	done      bool

	width  int
	height int
}

// NewDatasetWizard creates a dataset wizard pre-seeded from initial.
// Zero-value fields start empty; a recognized initial format becomes
// the pre-selected entry.
func NewDatasetWizard(initial datacommons.DatasetMetadata) DatasetWizard {
	formats := datacommons.DatasetFormats()

	formatIdx := 0
	for i, f := range formats {
		if f == initial.Format {
			formatIdx = i
			break
		}
	}

	fields := make([]components.TextField, fieldCount)
	fields[fieldID] = components.NewTextField("Dataset ID", "imdb-reviews").
		WithRequired(true).
		WithValue(initial.DatasetID)
	fields[fieldName] = components.NewTextField("Name", "IMDB Movie Reviews").
		WithRequired(true).
		WithValue(initial.Name)
	fields[fieldDescription] = components.NewTextField("Description", "What is in this dataset?").
		WithRequired(true).
		WithValue(initial.Description)
	fields[fieldLicense] = components.NewTextField("License", "apache-2.0").
		WithRequired(true).
		WithValue(initial.License)
	fields[fieldTags] = components.NewTextField("Tags", "nlp, sentiment (comma-separated)").
		WithValue(strings.Join(initial.Tags, ", "))

	return DatasetWizard{
		step:      datasetStepFormat,
		keys:      tui.DefaultKeyMap(),
		formats:   formats,
		formatIdx: formatIdx,
		fields:    fields,
	}
}

// Init implements tea.Model.
func (w DatasetWizard) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (w DatasetWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyMsg:
		if key.Matches(msg, w.keys.Quit) {
			w.cancelled = true
			return w, tea.Quit
		}
	}

	switch w.step {
	case datasetStepFormat:
		return w.updateFormat(msg)
	case datasetStepFields:
		return w.updateFields(msg)
	case datasetStepConfirm:
		return w.updateConfirm(msg)
	}
	return w, nil
}

func (w DatasetWizard) updateFormat(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch {
	case key.Matches(keyMsg, w.keys.Up):
		if w.formatIdx > 0 {
			w.formatIdx--
		}
	case key.Matches(keyMsg, w.keys.Down):
		if w.formatIdx < len(w.formats)-1 {
			w.formatIdx++
		}
	case key.Matches(keyMsg, w.keys.Select):
		w.step = datasetStepFields
		cmd := w.setFocus(0)
		return w, cmd
	case key.Matches(keyMsg, w.keys.Back):
		w.cancelled = true
		return w, tea.Quit
	}
	return w, nil
}

func (w DatasetWizard) updateFields(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Raw key strings here: the letter bindings on Up/Down would
		// otherwise swallow characters typed into the inputs.
		switch keyMsg.String() {
		case "tab", "down":
			cmd := w.setFocus(w.focusIndex + 1)
			return w, cmd
		case "shift+tab", "up":
			cmd := w.setFocus(w.focusIndex - 1)
			return w, cmd
		case "esc":
			w.validationErr = ""
			w.step = datasetStepFormat
			return w, nil
		case "enter":
			if w.focusIndex < fieldCount-1 {
				cmd := w.setFocus(w.focusIndex + 1)
				return w, cmd
			}
			if err := w.validateFields(); err != nil {
				w.validationErr = err.Error()
				return w, nil
			}
			w.validationErr = ""
			w.buildRecord()
			w.step = datasetStepConfirm
			return w, nil
		}
	}

	// Forward everything else to the inputs; only the focused one
	// consumes key presses.
	cmds := make([]tea.Cmd, len(w.fields))
	for i := range w.fields {
		w.fields[i], cmds[i] = w.fields[i].Update(msg)
	}
	return w, tea.Batch(cmds...)
}

func (w DatasetWizard) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch {
	case key.Matches(keyMsg, w.keys.Select):
		w.done = true
		return w, tea.Quit
	case key.Matches(keyMsg, w.keys.Back):
		w.step = datasetStepFields
		cmd := w.setFocus(w.focusIndex)
		return w, cmd
	}
	return w, nil
}

// setFocus moves input focus to the field at index i, wrapping around
// both ends of the form.
func (w *DatasetWizard) setFocus(i int) tea.Cmd {
	w.focusIndex = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range w.fields {
		if j == w.focusIndex {
			cmd = w.fields[j].Focus()
			continue
		}
		w.fields[j].Blur()
	}
	return cmd
}

func (w *DatasetWizard) validateFields() error {
	for i := range w.fields {
		if err := w.fields[i].Validate(); err != nil {
			return fmt.Errorf("%s: %v", strings.ToLower(fieldLabels[i]), err)
		}
	}
	return nil
}

func (w *DatasetWizard) buildRecord() {
	w.record = datacommons.DatasetMetadata{
		DatasetID:   strings.TrimSpace(w.fields[fieldID].Value()),
		Name:        strings.TrimSpace(w.fields[fieldName].Value()),
		Description: strings.TrimSpace(w.fields[fieldDescription].Value()),
		Format:      w.formats[w.formatIdx],
		License:     strings.TrimSpace(w.fields[fieldLicense].Value()),
		Tags:        splitTags(w.fields[fieldTags].Value()),
	}
}

// splitTags converts comma-separated input into a clean tag list.
// Blank entries are dropped; nil is returned when nothing remains so
// downstream defaulting can supply the empty list.
func splitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// View implements tea.Model.
func (w DatasetWizard) View() string {
	if w.done || w.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Dataset Registration"))
	b.WriteString("\n")

	switch w.step {
	case datasetStepFormat:
		b.WriteString(w.viewFormat())
	case datasetStepFields:
		b.WriteString(w.viewFields())
	case datasetStepConfirm:
		b.WriteString(w.viewConfirm())
	}

	return b.String()
}

func (w DatasetWizard) viewFormat() string {
	var b strings.Builder
	b.WriteString(tui.SubtitleStyle.Render("Select the dataset format"))
	b.WriteString("\n\n")

	for i, f := range w.formats {
		if i == w.formatIdx {
			line := fmt.Sprintf("%s %s", tui.SymbolSelected, f)
			b.WriteString(tui.SelectedStyle.Render(line))
			b.WriteString("\n")
			b.WriteString(tui.DescriptionStyle.Render(formatDescriptions[f]))
		} else {
			line := fmt.Sprintf("%s %s", tui.SymbolUnselected, f)
			b.WriteString(tui.UnselectedStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(tui.HelpStyle.Render(w.keys.HelpText()))
	return b.String()
}

func (w DatasetWizard) viewFields() string {
	var b strings.Builder
	b.WriteString(tui.SubtitleStyle.Render(fmt.Sprintf("Describe the %s dataset", w.formats[w.formatIdx])))
	b.WriteString("\n\n")

	for i := range w.fields {
		b.WriteString(w.fields[i].View())
		b.WriteString("\n\n")
	}

	if w.validationErr != "" {
		b.WriteString(tui.ErrorStyle.Render(tui.SymbolCross + " " + w.validationErr))
		b.WriteString("\n")
	}

	b.WriteString(tui.HelpStyle.Render(w.keys.InputHelpText()))
	return b.String()
}

func (w DatasetWizard) viewConfirm() string {
	tags := "(none)"
	if len(w.record.Tags) > 0 {
		tags = strings.Join(w.record.Tags, ", ")
	}

	var b strings.Builder
	b.WriteString(tui.SubtitleStyle.Render("Review the record before registering"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", tui.InputLabelStyle.Render("Dataset ID:"), w.record.DatasetID))
	b.WriteString(fmt.Sprintf("  %s %s\n", tui.InputLabelStyle.Render("Name:"), w.record.Name))
	b.WriteString(fmt.Sprintf("  %s %s\n", tui.InputLabelStyle.Render("Description:"), w.record.Description))
	b.WriteString(fmt.Sprintf("  %s %s\n", tui.InputLabelStyle.Render("Format:"), w.record.Format))
	b.WriteString(fmt.Sprintf("  %s %s\n", tui.InputLabelStyle.Render("License:"), w.record.License))
	b.WriteString(fmt.Sprintf("  %s %s\n", tui.InputLabelStyle.Render("Tags:"), tags))
	b.WriteString(tui.HelpStyle.Render("enter confirm • esc back"))
	return b.String()
}

// Result returns the wizard outcome. The record is only meaningful
// when Cancelled is false.
func (w DatasetWizard) Result() DatasetResult {
	return DatasetResult{
		Cancelled: w.cancelled || !w.done,
		Record:    w.record,
	}
}

// RunDatasetWizard runs the wizard on the controlling terminal and
// returns the collected metadata.
func RunDatasetWizard(initial datacommons.DatasetMetadata) (DatasetResult, error) {
	p := tea.NewProgram(NewDatasetWizard(initial), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return DatasetResult{Cancelled: true}, fmt.Errorf("failed to run dataset wizard: %w", err)
	}

	w, ok := m.(DatasetWizard)
	if !ok {
		return DatasetResult{Cancelled: true}, fmt.Errorf("unexpected wizard model type %T", m)
	}
	return w.Result(), nil
}
