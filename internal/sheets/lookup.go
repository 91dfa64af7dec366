package sheets

import (
	"context"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pavel-marchuk/order-finder/constants"
	"github.com/pavel-marchuk/order-finder/internal/cache"
)

// Fixed columns of the search sheet read for every matched row.
const (
	categoryColumn  = 2 // B: material type
	qualifierColumn = 3 // C: thickness
	secondaryColumn = 6 // F: companion color cell for combined rules
)

// TemplateSet is the reference background color per paper format, sampled
// from fixed cells of the search sheet. Formats whose template cell carries
// no fill map to an absent Color.
type TemplateSet map[constants.PaperFormat]Color

// MatchedRow is the transient per-hit record classification runs on. It lives
// only for the duration of one lookup decision and is never persisted.
type MatchedRow struct {
	CellAddress    string
	Row            int
	Col            int
	Category       string
	Qualifier      string
	PrimaryColor   Color
	SecondaryColor Color
}

const (
	templatesCacheKey = "CELL_TEMPLATES"
	answersCacheKey   = "ANSWER_LIST"
)

// Config carries the sheet names and cache staleness windows for a Lookup.
type Config struct {
	SearchSheet  string
	AnswerSheet  string
	TemplatesTTL time.Duration
	AnswersTTL   time.Duration
	OrdersTTL    time.Duration
}

// Lookup answers order queries against a Source. It owns three independent
// caches: templates and the answer catalog change rarely but are cheap to
// re-read, while per-order results are hot for a short window after each
// submission burst. Separate TTLs keep those policies independent.
type Lookup struct {
	src    Source
	cfg    Config
	logger *slog.Logger

	templates *cache.Cache[TemplateSet]
	answers   *cache.Cache[[]string]
	orders    *cache.Cache[[]MatchedRow]
}

func NewLookup(src Source, cfg Config, logger *slog.Logger) *Lookup {
	if logger == nil {
		logger = slog.Default()
	}
	return &Lookup{
		src:       src,
		cfg:       cfg,
		logger:    logger,
		templates: cache.New[TemplateSet](cfg.TemplatesTTL),
		answers:   cache.New[[]string](cfg.AnswersTTL),
		orders:    cache.New[[]MatchedRow](cfg.OrdersTTL),
	}
}

// TemplateSet returns the cached reference colors, repopulating on expiry.
// A source failure on any template cell fails the snapshot as a whole; a cell
// that merely has no fill contributes an absent color.
func (l *Lookup) TemplateSet(ctx context.Context) (TemplateSet, error) {
	return l.templates.GetOrPopulate(ctx, templatesCacheKey, func(ctx context.Context) (TemplateSet, error) {
		set := make(TemplateSet, len(constants.AllPaperFormats))
		for _, pf := range constants.AllPaperFormats {
			cell := constants.TemplateCells[pf]
			data, err := l.src.ReadCell(ctx, l.cfg.SearchSheet, cell)
			if err != nil {
				return nil, err
			}
			set[pf] = data.Fill
		}
		l.logger.Debug("template set refreshed", "formats", len(set))
		return set, nil
	})
}

// AnswerCatalog returns the cached candidate answers, repopulating on expiry.
func (l *Lookup) AnswerCatalog(ctx context.Context) ([]string, error) {
	return l.answers.GetOrPopulate(ctx, answersCacheKey, func(ctx context.Context) ([]string, error) {
		answers, err := l.src.ReadColumn(ctx, l.cfg.AnswerSheet, constants.AnswerColumn)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("answer catalog refreshed", "answers", len(answers))
		return answers, nil
	})
}

// FindRows returns a MatchedRow for every cell on the search sheet whose
// content is exactly orderID. No matches yields an empty slice, not an error.
// Results are cached per order id: resubmissions of the same order inside a
// short window are common and sheet reads are comparatively expensive.
func (l *Lookup) FindRows(ctx context.Context, orderID string) ([]MatchedRow, error) {
	return l.orders.GetOrPopulate(ctx, orderID, func(ctx context.Context) ([]MatchedRow, error) {
		addrs, err := l.src.FindCells(ctx, l.cfg.SearchSheet, orderID)
		if err != nil {
			return nil, err
		}
		rows := make([]MatchedRow, 0, len(addrs))
		for _, addr := range addrs {
			row, err := l.buildRow(ctx, addr)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		l.logger.Debug("order lookup", "order_id", orderID, "matches", len(rows))
		return rows, nil
	})
}

func (l *Lookup) buildRow(ctx context.Context, addr string) (MatchedRow, error) {
	col, row, err := excelize.CellNameToCoordinates(addr)
	if err != nil {
		return MatchedRow{}, err
	}

	primary, err := l.src.ReadCell(ctx, l.cfg.SearchSheet, addr)
	if err != nil {
		return MatchedRow{}, err
	}
	category, err := l.readRowCell(ctx, categoryColumn, row)
	if err != nil {
		return MatchedRow{}, err
	}
	qualifier, err := l.readRowCell(ctx, qualifierColumn, row)
	if err != nil {
		return MatchedRow{}, err
	}
	secondary, err := l.readRowCell(ctx, secondaryColumn, row)
	if err != nil {
		return MatchedRow{}, err
	}

	return MatchedRow{
		CellAddress:    addr,
		Row:            row,
		Col:            col,
		Category:       category.Value,
		Qualifier:      qualifier.Value,
		PrimaryColor:   primary.Fill,
		SecondaryColor: secondary.Fill,
	}, nil
}

func (l *Lookup) readRowCell(ctx context.Context, col, row int) (CellData, error) {
	addr, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return CellData{}, err
	}
	return l.src.ReadCell(ctx, l.cfg.SearchSheet, addr)
}
