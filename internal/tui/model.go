package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/compare"
	"github.com/rgehrsitz/lifex/internal/config"
	"github.com/rgehrsitz/lifex/internal/domain"
	"github.com/rgehrsitz/lifex/internal/tui/scenes"
)

// defaultSavePath is used by ctrl+s when no profile file was given
const defaultSavePath = "profile.yaml"

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Profile file
	profilePath string
	profileName string
	warnings    []string

	engine        *calculation.CalculationEngine
	compareEngine *compare.CompareEngine
	parser        *config.InputParser

	// baseline is always scored; comparison is non-nil in comparison mode
	baseline   domain.Profile
	comparison *domain.Profile

	basicsModel      *scenes.BasicsModel
	lifestyleModel   *scenes.LifestyleModel
	resultsModel     *scenes.ResultsModel
	suggestionsModel *scenes.SuggestionsModel

	keys keyMap
	help help.Model

	status string
	err    error
}

// NewModel creates a new application model. An empty path starts from the
// default profile.
func NewModel(profilePath string) Model {
	return NewModelWithEngine(profilePath, nil)
}

// NewModelWithEngine creates a model over a specific engine; nil uses the default table
func NewModelWithEngine(profilePath string, engine *calculation.CalculationEngine) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	m := Model{
		currentScene:     SceneBasics,
		profilePath:      profilePath,
		engine:           engine,
		compareEngine:    compare.NewCompareEngine(engine),
		parser:           &config.InputParser{Table: engine.Table},
		baseline:         domain.DefaultProfile(),
		basicsModel:      scenes.NewBasicsModel(),
		lifestyleModel:   scenes.NewLifestyleModel(engine.Table),
		resultsModel:     scenes.NewResultsModel(),
		suggestionsModel: scenes.NewSuggestionsModel(),
		keys:             defaultKeyMap(),
		help:             help.New(),
		width:            80,
		height:           24,
	}
	m.refresh()
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.profilePath == "" {
		return nil
	}
	return loadProfileCmd(m.parser, m.profilePath)
}

// loadProfileCmd returns a command that loads the profile file
func loadProfileCmd(parser *config.InputParser, path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ProfileLoadedMsg{
			Name:     cfg.Name,
			Path:     path,
			Profile:  cfg.Profile,
			Warnings: cfg.Warnings,
		}
	}
}

// saveProfileCmd returns a command that writes the baseline profile
func saveProfileCmd(parser *config.InputParser, path, name string, profile domain.Profile) tea.Cmd {
	return func() tea.Msg {
		err := parser.SaveToFile(path, &config.ProfileConfig{Name: name, Profile: profile})
		return SaveCompleteMsg{Filename: path, Err: err}
	}
}

// Baseline returns the baseline profile
func (m Model) Baseline() domain.Profile {
	return m.baseline
}

// Comparison returns the comparison profile, if comparison mode is on
func (m Model) Comparison() (domain.Profile, bool) {
	if m.comparison == nil {
		return domain.Profile{}, false
	}
	return *m.comparison, true
}

// CurrentScene returns the scene on screen
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// activeProfile is the profile the lifestyle editor changes
func (m Model) activeProfile() domain.Profile {
	if m.comparison != nil {
		return *m.comparison
	}
	return m.baseline
}

// refresh recomputes every derived view from the profiles
func (m *Model) refresh() {
	result := m.engine.ComputeLifeExpectancy(m.baseline)
	m.basicsModel.SetProfile(m.baseline)

	active := m.activeProfile()
	m.lifestyleModel.SetProfile(active)
	m.lifestyleModel.SetComparing(m.comparison != nil)

	m.resultsModel.SetResult(result, m.engine.RankSuggestions(m.baseline))
	if m.comparison != nil {
		cmp := m.compareEngine.CompareProfiles(m.baseline, *m.comparison)
		m.resultsModel.SetComparison(&cmp, *m.comparison)
	} else {
		m.resultsModel.SetComparison(nil, domain.Profile{})
	}

	current := m.engine.ComputeLifeExpectancy(active)
	best := m.engine.ComputeLifeExpectancy(m.engine.BestProfile(active))
	m.suggestionsModel.SetSuggestions(m.engine.RankSuggestions(active),
		current.AdjustedLifeExpectancy, best.AdjustedLifeExpectancy)
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.basicsModel.SetSize(width, height)
	m.lifestyleModel.SetSize(width, height)
	m.resultsModel.SetSize(width, height)
	m.suggestionsModel.SetSize(width, height)
}
