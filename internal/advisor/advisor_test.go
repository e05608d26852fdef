package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
)

func rule(ruleType string, level v1pb.SQLReviewRuleLevel) *v1pb.SQLReviewRule {
	return &v1pb.SQLReviewRule{Type: ruleType, Level: level}
}

func TestSplitTracksLines(t *testing.T) {
	stmts, err := Split("SELECT 1;\n\nUPDATE t SET a = 1;\nDELETE FROM t\nWHERE id = 2;")
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.Equal(t, 1, stmts[0].Line)
	assert.Equal(t, 3, stmts[1].Line)
	assert.Equal(t, 4, stmts[2].Line)
	assert.Equal(t, "SELECT 1", stmts[0].Text)
}

func TestCheckRules(t *testing.T) {
	tests := []struct {
		name   string
		script string
		rule   *v1pb.SQLReviewRule
		code   int32
	}{
		{"update without where", "UPDATE t SET a = 1", rule(RuleWhereRequire, v1pb.SQLReviewRuleLevel_ERROR), CodeStatementNoWhere},
		{"delete without where", "DELETE FROM t", rule(RuleWhereRequire, v1pb.SQLReviewRuleLevel_ERROR), CodeStatementNoWhere},
		{"select star", "SELECT * FROM t", rule(RuleNoSelectAll, v1pb.SQLReviewRuleLevel_ERROR), CodeStatementSelectAll},
		{"table without pk", "CREATE TABLE t (id INT)", rule(RuleTableRequirePK, v1pb.SQLReviewRuleLevel_ERROR), CodeTableNoPK},
		{"pk only in a comment", "CREATE TABLE t (id INT COMMENT 'primary key')", rule(RuleTableRequirePK, v1pb.SQLReviewRuleLevel_ERROR), CodeTableNoPK},
		{"unique key is not a pk", "CREATE TABLE t (id INT, UNIQUE KEY uk_id (id))", rule(RuleTableRequirePK, v1pb.SQLReviewRuleLevel_ERROR), CodeTableNoPK},
		{"drop table", "DROP TABLE t", rule(RuleTableNoDrop, v1pb.SQLReviewRuleLevel_ERROR), CodeTableDropDisallowed},
		{"drop database", "DROP DATABASE d", rule(RuleTableNoDrop, v1pb.SQLReviewRuleLevel_ERROR), CodeTableDropDisallowed},
		{"commit", "COMMIT", rule(RuleDisallowCommit, v1pb.SQLReviewRuleLevel_ERROR), CodeStatementCommit},
		{"table naming", "CREATE TABLE BadName (id INT PRIMARY KEY)", rule(RuleNamingTable, v1pb.SQLReviewRuleLevel_ERROR), CodeNamingTableMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Check(v1pb.Engine_MYSQL, tt.script, []*v1pb.SQLReviewRule{tt.rule})
			require.NoError(t, err)
			require.Len(t, res.Advices, 1)
			assert.Equal(t, tt.code, res.Advices[0].Code)
			assert.Equal(t, v1pb.Advice_ERROR, res.Advices[0].Status)
		})
	}
}

func TestPrimaryKeyForms(t *testing.T) {
	for _, script := range []string{
		"CREATE TABLE t (id INT PRIMARY KEY)",
		"CREATE TABLE t (id INT, PRIMARY KEY (id))",
		"CREATE TABLE t (a INT, b INT, PRIMARY KEY (a, b))",
	} {
		res, err := Check(v1pb.Engine_MYSQL, script, []*v1pb.SQLReviewRule{rule(RuleTableRequirePK, v1pb.SQLReviewRuleLevel_ERROR)})
		require.NoError(t, err, script)
		require.Len(t, res.Advices, 1, script)
		assert.Equal(t, CodeOK, res.Advices[0].Code, script)
	}
}

func TestCheckPassingScript(t *testing.T) {
	rules := []*v1pb.SQLReviewRule{
		rule(RuleWhereRequire, v1pb.SQLReviewRuleLevel_ERROR),
		rule(RuleNoSelectAll, v1pb.SQLReviewRuleLevel_WARNING),
		rule(RuleTableRequirePK, v1pb.SQLReviewRuleLevel_ERROR),
		rule(RuleNamingTable, v1pb.SQLReviewRuleLevel_WARNING),
	}
	script := "CREATE TABLE book (id INT, PRIMARY KEY (id));\nUPDATE book SET id = 2 WHERE id = 1;\nSELECT id FROM book;"
	res, err := Check(v1pb.Engine_MYSQL, script, rules)
	require.NoError(t, err)
	require.Len(t, res.Advices, 1)
	assert.Equal(t, v1pb.Advice_SUCCESS, res.Advices[0].Status)
	assert.Equal(t, v1pb.RiskLevel_MODERATE, res.RiskLevel)
}

func TestCheckWarningLevel(t *testing.T) {
	res, err := Check(v1pb.Engine_TIDB, "SELECT * FROM t", []*v1pb.SQLReviewRule{rule(RuleNoSelectAll, v1pb.SQLReviewRuleLevel_WARNING)})
	require.NoError(t, err)
	require.Len(t, res.Advices, 1)
	assert.Equal(t, v1pb.Advice_WARNING, res.Advices[0].Status)
	assert.Equal(t, v1pb.Advice_WARNING, StatusOf(res.Advices))
}

func TestCheckSkipsDisabledAndOtherEngineRules(t *testing.T) {
	pg := rule(RuleWhereRequire, v1pb.SQLReviewRuleLevel_ERROR)
	pg.Engine = v1pb.Engine_POSTGRES
	res, err := Check(v1pb.Engine_MYSQL, "DELETE FROM t", []*v1pb.SQLReviewRule{
		pg,
		rule(RuleNoSelectAll, v1pb.SQLReviewRuleLevel_DISABLED),
	})
	require.NoError(t, err)
	require.Len(t, res.Advices, 1)
	assert.Equal(t, v1pb.Advice_SUCCESS, res.Advices[0].Status)
}

func TestCheckSyntaxError(t *testing.T) {
	res, err := Check(v1pb.Engine_MYSQL, "SELECT 1;\nSELEC 2", nil)
	require.NoError(t, err)
	require.Len(t, res.Advices, 1)
	assert.Equal(t, CodeSyntaxError, res.Advices[0].Code)
	assert.Equal(t, v1pb.Advice_ERROR, res.Advices[0].Status)
	assert.Equal(t, int32(2), res.Advices[0].StartPosition.Line)
}

func TestCheckRiskLevels(t *testing.T) {
	tests := []struct {
		script string
		risk   v1pb.RiskLevel
	}{
		{"INSERT INTO t VALUES (1)", v1pb.RiskLevel_LOW},
		{"CREATE TABLE t (id INT)", v1pb.RiskLevel_MODERATE},
		{"INSERT INTO t VALUES (1); DROP TABLE t", v1pb.RiskLevel_HIGH},
		{"DROP DATABASE d", v1pb.RiskLevel_HIGH},
	}
	for _, tt := range tests {
		res, err := Check(v1pb.Engine_MYSQL, tt.script, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.risk, res.RiskLevel, tt.script)
	}
}

func TestCheckUnsupportedEngine(t *testing.T) {
	res, err := Check(v1pb.Engine_POSTGRES, "SELECT 1", nil)
	require.NoError(t, err)
	require.Len(t, res.Advices, 1)
	assert.Equal(t, CodeUnsupportedEngine, res.Advices[0].Code)
}

func TestNamingPayload(t *testing.T) {
	r := rule(RuleNamingTable, v1pb.SQLReviewRuleLevel_ERROR)
	r.Payload = `{"format": "^tbl_[a-z]+$", "maxLength": 10}`

	res, err := Check(v1pb.Engine_MYSQL, "CREATE TABLE tbl_book (id INT PRIMARY KEY)", []*v1pb.SQLReviewRule{r})
	require.NoError(t, err)
	assert.Equal(t, v1pb.Advice_SUCCESS, StatusOf(res.Advices))

	res, err = Check(v1pb.Engine_MYSQL, "CREATE TABLE tbl_bookshelves (id INT PRIMARY KEY)", []*v1pb.SQLReviewRule{r})
	require.NoError(t, err)
	require.Len(t, res.Advices, 1)
	assert.Contains(t, res.Advices[0].Content, "within 10 characters")

	r.Payload = `{"format": "("}`
	_, err = Check(v1pb.Engine_MYSQL, "SELECT 1", []*v1pb.SQLReviewRule{r})
	assert.Error(t, err)
	assert.Error(t, ValidateRule(r))
}

func TestMergeRules(t *testing.T) {
	merged := MergeRules(
		[]*v1pb.SQLReviewRule{rule(RuleWhereRequire, v1pb.SQLReviewRuleLevel_WARNING), rule(RuleNoSelectAll, v1pb.SQLReviewRuleLevel_DISABLED)},
		[]*v1pb.SQLReviewRule{rule(RuleWhereRequire, v1pb.SQLReviewRuleLevel_ERROR), rule(RuleTableNoDrop, v1pb.SQLReviewRuleLevel_WARNING)},
	)
	require.Len(t, merged, 2)
	assert.Equal(t, RuleWhereRequire, merged[0].Type)
	assert.Equal(t, v1pb.SQLReviewRuleLevel_ERROR, merged[0].Level)
	assert.Equal(t, RuleTableNoDrop, merged[1].Type)
}

func TestValidateRule(t *testing.T) {
	assert.NoError(t, ValidateRule(rule(RuleWhereRequire, v1pb.SQLReviewRuleLevel_DISABLED)))
	assert.Error(t, ValidateRule(rule("statement.unknown", v1pb.SQLReviewRuleLevel_ERROR)))
	assert.Error(t, ValidateRule(rule(RuleWhereRequire, v1pb.SQLReviewRuleLevel_LEVEL_UNSPECIFIED)))
}
