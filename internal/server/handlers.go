package server

import (
	"math/rand"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/example/kanasensei/internal/match"
	"github.com/example/kanasensei/internal/selector"
	"github.com/example/kanasensei/internal/session"
	"github.com/example/kanasensei/pkg/models"
)

// --- catalog ---

func (s *Server) listCharacters(c echo.Context) error {
	scope := selector.Scope(c.QueryParam("scope"))
	if scope == "" {
		return c.JSON(http.StatusOK, s.catalog.Characters())
	}
	sets := selector.SetSelection{
		Main:     c.QueryParam("main") != "false",
		Dakuten:  c.QueryParam("dakuten") == "true",
		Yoon:     c.QueryParam("yoon") == "true",
		Extended: c.QueryParam("extended") == "true",
	}
	return c.JSON(http.StatusOK, s.catalog.ByTypes(selector.Types(scope, sets)...))
}

func (s *Server) listVocabulary(c echo.Context) error {
	return c.JSON(http.StatusOK, s.catalog.Vocabulary())
}

// --- grid sessions ---

type startGridRequest struct {
	Scope    selector.Scope        `json:"scope"`
	Sets     selector.SetSelection `json:"sets"`
	MaxCount int                   `json:"max_count"`
	Review   bool                  `json:"review"`
}

type gridResponse struct {
	ID     string                `json:"id"`
	Review bool                  `json:"review"`
	State  session.State         `json:"state"`
	Items  []models.PracticeItem `json:"items"`
}

func (s *Server) startGrid(c echo.Context) error {
	var req startGridRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	var items []models.StudyItem
	if req.Review {
		// A review pass drills the incorrect characters; words go through
		// the vocabulary quiz instead.
		for _, char := range s.tracker.IncorrectCharacters() {
			items = append(items, models.CharacterItem(char))
		}
		rand.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
		if req.MaxCount > 0 && len(items) > req.MaxCount {
			items = items[:req.MaxCount]
		}
	} else {
		for _, char := range s.selector.Characters(req.Scope, req.Sets, req.MaxCount) {
			items = append(items, models.CharacterItem(char))
		}
	}

	grid, err := session.NewGrid(items, req.Review, s.tracker)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	s.sessions.PutGrid(grid)
	return c.JSON(http.StatusCreated, gridResponse{
		ID:     grid.ID,
		Review: grid.Review,
		State:  grid.State(),
		Items:  grid.Items(),
	})
}

func (s *Server) getGrid(c echo.Context) error {
	grid, err := s.sessions.Grid(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, gridResponse{
		ID:     grid.ID,
		Review: grid.Review,
		State:  grid.State(),
		Items:  grid.Items(),
	})
}

type checkRequest struct {
	InstanceID string `json:"instance_id"`
	Answer     string `json:"answer"`
}

func (s *Server) checkGridItem(c echo.Context) error {
	grid, err := s.sessions.Grid(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	item, err := grid.Check(req.InstanceID, req.Answer)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"item":  item,
		"state": grid.State(),
	})
}

func (s *Server) finishGrid(c echo.Context) error {
	grid, err := s.sessions.Grid(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	outcome, err := grid.Finish()
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"outcome": outcome,
		"items":   grid.Items(),
	})
}

func (s *Server) abandonGrid(c echo.Context) error {
	s.sessions.DropGrid(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// --- comprehensive quiz ---

type startQuizRequest struct {
	Scope selector.Scope        `json:"scope"`
	Sets  selector.SetSelection `json:"sets"`
}

func (s *Server) startComprehensive(c echo.Context) error {
	var req startQuizRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	pool := s.selector.Characters(req.Scope, req.Sets, 0)
	quiz, err := session.NewComprehensive(pool, s.tracker)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	s.sessions.PutComprehensive(quiz)
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":       quiz.ID,
		"question": quiz.Next(),
	})
}

func (s *Server) nextComprehensive(c echo.Context) error {
	quiz, err := s.sessions.Comprehensive(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"question": quiz.Next(),
		"stats":    quiz.Stats(),
	})
}

type answerRequest struct {
	Answer string `json:"answer"`
}

func (s *Server) answerComprehensive(c echo.Context) error {
	quiz, err := s.sessions.Comprehensive(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	verdict, err := quiz.Answer(req.Answer)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"verdict": verdict,
		"stats":   quiz.Stats(),
	})
}

func (s *Server) abandonComprehensive(c echo.Context) error {
	s.sessions.DropComprehensive(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// --- vocabulary quiz ---

type startVocabularyRequest struct {
	Review bool `json:"review"`
}

func (s *Server) startVocabulary(c echo.Context) error {
	var req startVocabularyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	quiz, err := session.NewVocabulary(s.catalog.Vocabulary(), s.tracker.IncorrectVocabulary(), req.Review, s.tracker)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	s.sessions.PutVocabulary(quiz)
	question, err := quiz.Next()
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":       quiz.ID,
		"review":   quiz.Review,
		"question": question,
	})
}

func (s *Server) nextVocabulary(c echo.Context) error {
	quiz, err := s.sessions.Vocabulary(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	question, err := quiz.Next()
	if err != nil {
		// The review pass has retired every word
		return c.JSON(http.StatusOK, map[string]interface{}{
			"state": quiz.State(),
			"stats": quiz.Stats(),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"state":    quiz.State(),
		"question": question,
		"stats":    quiz.Stats(),
	})
}

type selectRequest struct {
	Selected string `json:"selected"`
}

func (s *Server) answerVocabulary(c echo.Context) error {
	quiz, err := s.sessions.Vocabulary(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	var req selectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	verdict, err := quiz.Answer(req.Selected)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"verdict": verdict,
		"state":   quiz.State(),
		"stats":   quiz.Stats(),
	})
}

func (s *Server) abandonVocabulary(c echo.Context) error {
	s.sessions.DropVocabulary(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// --- matching game ---

type startMatchRequest struct {
	Mode         match.Mode            `json:"mode"`
	Scope        selector.Scope        `json:"scope"`
	Sets         selector.SetSelection `json:"sets"`
	HiraganaSets selector.SetSelection `json:"hiragana_sets"`
	KatakanaSets selector.SetSelection `json:"katakana_sets"`
	NumPairs     int                   `json:"num_pairs"`
}

type matchResponse struct {
	ID        string             `json:"id"`
	Mode      match.Mode         `json:"mode"`
	Cards     []models.MatchCard `json:"cards"`
	Completed bool               `json:"completed"`
}

func (s *Server) startMatch(c echo.Context) error {
	var req startMatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	var engine *match.Engine
	switch req.Mode {
	case match.ModeHiraganaKatakana:
		pairs := s.selector.Pairs(req.HiraganaSets, req.KatakanaSets, req.NumPairs)
		if len(pairs) == 0 {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "no pairs available for this selection")
		}
		engine = match.NewHiraganaKatakana(pairs, s.tracker)
	case match.ModeKanaRomaji:
		chars := s.selector.Characters(req.Scope, req.Sets, req.NumPairs)
		if len(chars) == 0 {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "no characters available for this selection")
		}
		engine = match.NewKanaRomaji(chars, s.tracker)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown matching mode")
	}

	s.sessions.PutMatch(engine)
	return c.JSON(http.StatusCreated, matchResponse{
		ID:        engine.ID,
		Mode:      engine.Mode,
		Cards:     engine.Cards(),
		Completed: engine.Completed(),
	})
}

func (s *Server) getMatch(c echo.Context) error {
	engine, err := s.sessions.Match(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, matchResponse{
		ID:        engine.ID,
		Mode:      engine.Mode,
		Cards:     engine.Cards(),
		Completed: engine.Completed(),
	})
}

type flipRequest struct {
	CardID string `json:"card_id"`
}

func (s *Server) flipCard(c echo.Context) error {
	engine, err := s.sessions.Match(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	var req flipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	result := engine.Flip(req.CardID)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"result": result,
		"cards":  engine.Cards(),
	})
}

func (s *Server) endMatch(c echo.Context) error {
	engine, err := s.sessions.Match(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	summary := engine.End()
	s.sessions.DropMatch(engine.ID)
	return c.JSON(http.StatusOK, summary)
}

func (s *Server) abandonMatch(c echo.Context) error {
	s.sessions.DropMatch(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// --- progress ---

func (s *Server) getProgress(c echo.Context) error {
	return c.JSON(http.StatusOK, s.tracker.Summary())
}

func (s *Server) listSeen(c echo.Context) error {
	return c.JSON(http.StatusOK, s.tracker.SeenRecords())
}

func (s *Server) listIncorrect(c echo.Context) error {
	items := s.tracker.IncorrectItems()
	out := make([]models.StudyItem, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) clearIncorrect(c echo.Context) error {
	s.tracker.ClearAllIncorrect()
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listHistory(c echo.Context) error {
	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	return c.JSON(http.StatusOK, s.tracker.Outcomes(limit))
}

func (s *Server) getPreferences(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Preferences{DisplayName: s.tracker.DisplayName()})
}

func (s *Server) putPreferences(c echo.Context) error {
	var prefs models.Preferences
	if err := c.Bind(&prefs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	s.tracker.SetDisplayName(prefs.DisplayName)
	return c.JSON(http.StatusOK, prefs)
}

// --- chatbot ---

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) chat(c echo.Context) error {
	if s.tutor == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "the tutor is not configured")
	}
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	reply, err := s.tutor.Chat(c.Request().Context(), req.Message)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"reply": reply})
}

func (s *Server) chatHistory(c echo.Context) error {
	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	return c.JSON(http.StatusOK, s.tracker.ChatHistory(limit))
}

// --- speech ---

func (s *Server) utterance(c echo.Context) error {
	text := c.QueryParam("text")
	if text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}
	return c.JSON(http.StatusOK, s.pronouncer.Utter(text))
}

// --- health ---

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"degraded": s.tracker.Degraded(),
	})
}
