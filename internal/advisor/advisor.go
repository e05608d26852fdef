// Package advisor reviews SQL scripts against SQL review rules and rates
// their risk.
package advisor

import (
	"fmt"
	"regexp"

	"github.com/dolthub/vitess/go/vt/sqlparser"
	"github.com/goccy/go-json"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
)

const (
	RuleWhereRequire   = "statement.where.require"
	RuleNoSelectAll    = "statement.select.no-select-all"
	RuleDisallowCommit = "statement.disallow-commit"
	RuleTableRequirePK = "table.require-pk"
	RuleTableNoDrop    = "table.no-drop"
	RuleNamingTable    = "naming.table"
)

const (
	defaultTableFormat    = "^[a-z]+(_[a-z]+)*$"
	defaultTableMaxLength = 64
)

// Advice codes.
const (
	CodeOK                  int32 = 0
	CodeInternal            int32 = 1
	CodeUnsupportedEngine   int32 = 2
	CodeSyntaxError         int32 = 201
	CodeStatementNoWhere    int32 = 202
	CodeStatementSelectAll  int32 = 203
	CodeStatementCommit     int32 = 206
	CodeNamingTableMismatch int32 = 301
	CodeTableNoPK           int32 = 601
	CodeTableDropDisallowed int32 = 603
)

// KnownRule reports whether rule is a rule type the advisor implements.
func KnownRule(rule string) bool {
	switch rule {
	case RuleWhereRequire, RuleNoSelectAll, RuleDisallowCommit, RuleTableRequirePK, RuleTableNoDrop, RuleNamingTable:
		return true
	}
	return false
}

// Supported reports whether scripts for engine can be parsed.
func Supported(engine v1pb.Engine) bool {
	switch engine {
	case v1pb.Engine_MYSQL, v1pb.Engine_TIDB, v1pb.Engine_MARIADB, v1pb.Engine_OCEANBASE:
		return true
	}
	return false
}

// MergeRules combines rule sets by rule type. When several sets carry the
// same rule, the most severe level wins and the first payload is kept.
func MergeRules(sets ...[]*v1pb.SQLReviewRule) []*v1pb.SQLReviewRule {
	var merged []*v1pb.SQLReviewRule
	byType := map[string]*v1pb.SQLReviewRule{}
	for _, set := range sets {
		for _, r := range set {
			if r == nil || r.Level == v1pb.SQLReviewRuleLevel_DISABLED {
				continue
			}
			if prev, ok := byType[r.Type]; ok {
				if severity(r.Level) > severity(prev.Level) {
					prev.Level = r.Level
				}
				continue
			}
			c := *r
			byType[r.Type] = &c
			merged = append(merged, &c)
		}
	}
	return merged
}

func severity(level v1pb.SQLReviewRuleLevel) int {
	switch level {
	case v1pb.SQLReviewRuleLevel_ERROR:
		return 2
	case v1pb.SQLReviewRuleLevel_WARNING:
		return 1
	}
	return 0
}

// Result is the outcome of reviewing one script.
type Result struct {
	Advices   []*v1pb.Advice
	RiskLevel v1pb.RiskLevel
}

// Check reviews script for engine against rules. A script without
// findings yields a single SUCCESS advice.
func Check(engine v1pb.Engine, script string, rules []*v1pb.SQLReviewRule) (*Result, error) {
	if !Supported(engine) {
		return &Result{Advices: []*v1pb.Advice{{
			Status:  v1pb.Advice_WARNING,
			Code:    CodeUnsupportedEngine,
			Title:   "Unsupported engine",
			Content: fmt.Sprintf("SQL review is not supported for %s", engine),
		}}}, nil
	}

	active, err := compileRules(engine, rules)
	if err != nil {
		return nil, err
	}

	result := &Result{RiskLevel: v1pb.RiskLevel_RISK_LEVEL_UNSPECIFIED}
	stmts, err := Split(script)
	if err != nil {
		result.Advices = append(result.Advices, syntaxError(1, err))
		return result, nil
	}
	for _, stmt := range stmts {
		parsed, err := sqlparser.Parse(stmt.Text)
		if err != nil {
			if commitRe.MatchString(stmt.Text) {
				result.Advices = append(result.Advices, active.checkText(stmt)...)
				continue
			}
			result.Advices = append(result.Advices, syntaxError(stmt.Line, err))
			continue
		}
		result.RiskLevel = maxRisk(result.RiskLevel, riskOf(parsed))
		result.Advices = append(result.Advices, active.checkText(stmt)...)
		result.Advices = append(result.Advices, active.check(stmt, parsed)...)
	}

	if len(result.Advices) == 0 {
		result.Advices = []*v1pb.Advice{{Status: v1pb.Advice_SUCCESS, Code: CodeOK, Title: "OK"}}
	}
	if result.RiskLevel == v1pb.RiskLevel_RISK_LEVEL_UNSPECIFIED && len(stmts) > 0 {
		result.RiskLevel = v1pb.RiskLevel_LOW
	}
	return result, nil
}

func syntaxError(line int, err error) *v1pb.Advice {
	return &v1pb.Advice{
		Status:        v1pb.Advice_ERROR,
		Code:          CodeSyntaxError,
		Title:         "Syntax error",
		Content:       err.Error(),
		StartPosition: &v1pb.Position{Line: int32(line), Column: 1},
	}
}

// StatusOf is the worst advice status in advices.
func StatusOf(advices []*v1pb.Advice) v1pb.Advice_Status {
	worst := v1pb.Advice_STATUS_UNSPECIFIED
	for _, a := range advices {
		if a.Status > worst {
			worst = a.Status
		}
	}
	return worst
}

func riskOf(stmt sqlparser.Statement) v1pb.RiskLevel {
	switch s := stmt.(type) {
	case *sqlparser.DDL:
		if s.Action == sqlparser.DropStr || s.Action == sqlparser.TruncateStr {
			return v1pb.RiskLevel_HIGH
		}
		return v1pb.RiskLevel_MODERATE
	case *sqlparser.DBDDL:
		if s.Action == sqlparser.DropStr {
			return v1pb.RiskLevel_HIGH
		}
		return v1pb.RiskLevel_MODERATE
	case *sqlparser.AlterTable:
		return v1pb.RiskLevel_MODERATE
	}
	return v1pb.RiskLevel_LOW
}

func maxRisk(a, b v1pb.RiskLevel) v1pb.RiskLevel {
	if b > a {
		return b
	}
	return a
}

var commitRe = regexp.MustCompile(`(?i)^\s*commit\b`)

type namingPayload struct {
	Format    string `json:"format"`
	MaxLength int    `json:"maxLength"`
}

type activeRule struct {
	rule   *v1pb.SQLReviewRule
	status v1pb.Advice_Status
	naming *regexp.Regexp
	maxLen int
}

type ruleSet []activeRule

func compileRules(engine v1pb.Engine, rules []*v1pb.SQLReviewRule) (ruleSet, error) {
	var set ruleSet
	for _, r := range rules {
		if r == nil || !KnownRule(r.Type) {
			continue
		}
		if r.Engine != v1pb.Engine_ENGINE_UNSPECIFIED && r.Engine != engine {
			continue
		}
		ar := activeRule{rule: r}
		switch r.Level {
		case v1pb.SQLReviewRuleLevel_ERROR:
			ar.status = v1pb.Advice_ERROR
		case v1pb.SQLReviewRuleLevel_WARNING:
			ar.status = v1pb.Advice_WARNING
		default:
			continue
		}
		if r.Type == RuleNamingTable {
			p := namingPayload{Format: defaultTableFormat, MaxLength: defaultTableMaxLength}
			if r.Payload != "" {
				if err := json.Unmarshal([]byte(r.Payload), &p); err != nil {
					return nil, fmt.Errorf("rule %s: invalid payload: %w", r.Type, err)
				}
			}
			re, err := regexp.Compile(p.Format)
			if err != nil {
				return nil, fmt.Errorf("rule %s: invalid format: %w", r.Type, err)
			}
			ar.naming, ar.maxLen = re, p.MaxLength
		}
		set = append(set, ar)
	}
	return set, nil
}

// ValidateRule checks the type and payload of a rule before it is stored.
func ValidateRule(r *v1pb.SQLReviewRule) error {
	if !KnownRule(r.Type) {
		return fmt.Errorf("unknown SQL review rule %q", r.Type)
	}
	if r.Level == v1pb.SQLReviewRuleLevel_LEVEL_UNSPECIFIED {
		return fmt.Errorf("rule %s: level is required", r.Type)
	}
	level := r.Level
	if level == v1pb.SQLReviewRuleLevel_DISABLED {
		level = v1pb.SQLReviewRuleLevel_WARNING
	}
	candidate := *r
	candidate.Level = level
	_, err := compileRules(r.Engine, []*v1pb.SQLReviewRule{&candidate})
	return err
}

func (s ruleSet) find(ruleType string) (activeRule, bool) {
	for _, r := range s {
		if r.rule.Type == ruleType {
			return r, true
		}
	}
	return activeRule{}, false
}

func (r activeRule) advice(code int32, title, content string, line int) *v1pb.Advice {
	return &v1pb.Advice{
		Status:        r.status,
		Code:          code,
		Title:         title,
		Content:       content,
		StartPosition: &v1pb.Position{Line: int32(line), Column: 1},
	}
}

// checkText applies the rules that work on the raw statement text.
func (s ruleSet) checkText(stmt Statement) []*v1pb.Advice {
	var advices []*v1pb.Advice
	if r, ok := s.find(RuleDisallowCommit); ok && commitRe.MatchString(stmt.Text) {
		advices = append(advices, r.advice(CodeStatementCommit, r.rule.Type,
			fmt.Sprintf("Commit is not allowed, related statement: %q", stmt.Text), stmt.Line))
	}
	return advices
}

func (s ruleSet) check(stmt Statement, parsed sqlparser.Statement) []*v1pb.Advice {
	var advices []*v1pb.Advice
	switch n := parsed.(type) {
	case *sqlparser.Update:
		if r, ok := s.find(RuleWhereRequire); ok && n.Where == nil {
			advices = append(advices, r.advice(CodeStatementNoWhere, r.rule.Type,
				fmt.Sprintf("\"%s\" requires WHERE clause", stmt.Text), stmt.Line))
		}
	case *sqlparser.Delete:
		if r, ok := s.find(RuleWhereRequire); ok && n.Where == nil {
			advices = append(advices, r.advice(CodeStatementNoWhere, r.rule.Type,
				fmt.Sprintf("\"%s\" requires WHERE clause", stmt.Text), stmt.Line))
		}
	case *sqlparser.Select:
		if r, ok := s.find(RuleNoSelectAll); ok {
			for _, e := range n.SelectExprs {
				if _, star := e.(*sqlparser.StarExpr); star {
					advices = append(advices, r.advice(CodeStatementSelectAll, r.rule.Type,
						fmt.Sprintf("\"%s\" uses SELECT all", stmt.Text), stmt.Line))
					break
				}
			}
		}
	case *sqlparser.DDL:
		advices = append(advices, s.checkDDL(stmt, n)...)
	case *sqlparser.DBDDL:
		if r, ok := s.find(RuleTableNoDrop); ok && n.Action == sqlparser.DropStr {
			advices = append(advices, r.advice(CodeTableDropDisallowed, r.rule.Type,
				fmt.Sprintf("Dropping database is not allowed, related statement: %q", stmt.Text), stmt.Line))
		}
	}
	return advices
}

// colKeyPrimary mirrors the parser's unexported ColumnKeyOption for an
// inline PRIMARY KEY column option.
const colKeyPrimary sqlparser.ColumnKeyOption = 1

// hasPrimaryKey reports whether a table spec declares a primary key, either
// as a column option or as a table index.
func hasPrimaryKey(spec *sqlparser.TableSpec) bool {
	for _, col := range spec.Columns {
		if col.Type.KeyOpt == colKeyPrimary {
			return true
		}
	}
	for _, idx := range spec.Indexes {
		if idx.Info != nil && idx.Info.Primary {
			return true
		}
	}
	return false
}

func (s ruleSet) checkDDL(stmt Statement, ddl *sqlparser.DDL) []*v1pb.Advice {
	var advices []*v1pb.Advice
	switch ddl.Action {
	case sqlparser.DropStr:
		if r, ok := s.find(RuleTableNoDrop); ok {
			advices = append(advices, r.advice(CodeTableDropDisallowed, r.rule.Type,
				fmt.Sprintf("Dropping table is not allowed, related statement: %q", stmt.Text), stmt.Line))
		}
	case sqlparser.CreateStr:
		table := ddl.Table.Name.String()
		if r, ok := s.find(RuleTableRequirePK); ok && ddl.TableSpec != nil && !hasPrimaryKey(ddl.TableSpec) {
			advices = append(advices, r.advice(CodeTableNoPK, r.rule.Type,
				fmt.Sprintf("Table `%s` requires PRIMARY KEY", table), stmt.Line))
		}
		if r, ok := s.find(RuleNamingTable); ok && table != "" {
			if !r.naming.MatchString(table) {
				advices = append(advices, r.advice(CodeNamingTableMismatch, r.rule.Type,
					fmt.Sprintf("`%s` mismatches table naming convention, naming format should be %q", table, r.naming.String()), stmt.Line))
			}
			if r.maxLen > 0 && len(table) > r.maxLen {
				advices = append(advices, r.advice(CodeNamingTableMismatch, r.rule.Type,
					fmt.Sprintf("`%s` mismatches table naming convention, its length should be within %d characters", table, r.maxLen), stmt.Line))
			}
		}
	}
	return advices
}
