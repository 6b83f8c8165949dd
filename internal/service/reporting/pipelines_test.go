package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func stageValue(t *testing.T, stage bson.D, name string) bson.D {
	t.Helper()
	require.Len(t, stage, 1)
	require.Equal(t, name, stage[0].Key)
	value, ok := stage[0].Value.(bson.D)
	require.True(t, ok, "stage %s is not a document", name)
	return value
}

func TestStockRollupPipelineShape(t *testing.T) {
	pipeline := stockRollupPipeline("Brand")
	require.Len(t, pipeline, 3)

	addFields := stageValue(t, pipeline[0], "$addFields")
	require.Len(t, addFields, 1)
	assert.Equal(t, "total", addFields[0].Key)

	group := stageValue(t, pipeline[1], "$group")
	assert.Equal(t, "_id", group[0].Key)
	assert.Equal(t, "$Brand", group[0].Value)

	project := stageValue(t, pipeline[2], "$project")
	assert.Equal(t, "_id", project[0].Key)
	assert.Equal(t, 0, project[0].Value)
}

func TestMonthlyPipelineGroupsByDimension(t *testing.T) {
	pipeline := monthlySalesPipeline(3, 2024, "$Category")
	require.Len(t, pipeline, 2)

	match := stageValue(t, pipeline[0], "$match")
	assert.Equal(t, bson.D{{Key: "TMonth", Value: 3}, {Key: "TYear", Value: 2024}}, match)

	group := stageValue(t, pipeline[1], "$group")
	assert.Equal(t, "$Category", group[0].Value)
}

// The grand total must be computed over the same filter predicate as the
// grouped report.
func TestTotalPipelineSharesMatchWithGroupedPipelines(t *testing.T) {
	monthly := monthlySalesPipeline(7, 2023, "$Brand")
	monthlyTotal := salesTotalPipeline(monthlyMatch(7, 2023))
	assert.Equal(t, monthly[0], monthlyTotal[0])

	yearly := yearlySalesPipeline(2023, "$TMonth")
	yearlyTotal := salesTotalPipeline(yearlyMatch(2023))
	assert.Equal(t, yearly[0], yearlyTotal[0])
}

func TestTotalPipelineHasNoGroupKey(t *testing.T) {
	pipeline := salesTotalPipeline(yearlyMatch(2024))
	require.Len(t, pipeline, 2)

	group := stageValue(t, pipeline[1], "$group")
	assert.Equal(t, "_id", group[0].Key)
	assert.Nil(t, group[0].Value)
}

func TestTransactionsPipelineGroupsByTransaction(t *testing.T) {
	pipeline := transactionsPipeline("9876543210")
	require.Len(t, pipeline, 2)

	match := stageValue(t, pipeline[0], "$match")
	assert.Equal(t, bson.D{{Key: "CustomerPhone", Value: "9876543210"}}, match)

	group := stageValue(t, pipeline[1], "$group")
	assert.Equal(t, "$TransactionID", group[0].Value)
}
