package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytwatch/internal/models"
)

func TestCombineVideo_NoAPIRecord(t *testing.T) {
	stub := models.VideoStub{ID: "v1", Title: "T1", URL: "https://youtu.be/v1", ViewCount: 42}

	got := CombineVideo(stub, nil)

	assert.Equal(t, "v1", got.VideoID)
	assert.Equal(t, "T1", got.Title)
	assert.Equal(t, int64(42), got.ViewCount)
	assert.Equal(t, int64(0), got.LikeCount)
}

func TestCombineVideo_APIIsAuthoritativeForCounts(t *testing.T) {
	stub := models.VideoStub{ID: "v1", Title: "T1", ViewCount: 1}
	apiMap := map[string]models.VideoAPIInfo{
		"v1": {ID: "v1", ViewCount: 100, LikeCount: 10, CommentCount: 2},
	}

	got := CombineVideo(stub, apiMap)

	assert.Equal(t, int64(100), got.ViewCount)
	assert.Equal(t, int64(10), got.LikeCount)
	assert.Equal(t, int64(2), got.CommentCount)
}

func TestCombineVideo_Idempotent(t *testing.T) {
	stub := models.VideoStub{ID: "v1", Title: "T1", Tags: []string{"a"}}
	apiMap := map[string]models.VideoAPIInfo{
		"v1": {ID: "v1", Tags: []string{"b"}, ViewCount: 5},
	}

	first := CombineVideo(stub, apiMap)
	second := CombineVideo(stub, apiMap)

	assert.Equal(t, first, second)
	assert.ElementsMatch(t, []string{"a", "b"}, first.Tags)
}

func TestCombineVideo_TagUnionDeduped(t *testing.T) {
	stub := models.VideoStub{ID: "v1", Tags: []string{"a", "b"}}
	apiMap := map[string]models.VideoAPIInfo{
		"v1": {ID: "v1", Tags: []string{"b", "c"}},
	}

	got := CombineVideo(stub, apiMap)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, got.Tags)
}

func TestCombineChannel_FieldPrecedence(t *testing.T) {
	extractor := models.ChannelDescriptor{
		ChannelID:  "UC1",
		Title:      "Demo",
		ChannelURL: "https://www.youtube.com/@demo",
	}
	api := &models.ChannelAPIInfo{
		ID:              "UC1",
		ViewCount:       100,
		SubscriberCount: 10,
	}

	got := CombineChannel(extractor, api)

	require.Equal(t, "UC1", got.ChannelID)
	assert.Equal(t, "Demo", got.Title)
	assert.Equal(t, int64(100), got.ViewCount)
	assert.Equal(t, int64(10), got.FollowerCount)
	assert.Equal(t, "https://www.youtube.com/@demo", got.ChannelURL)
}

func TestCombineChannel_ChannelIDFallsBackToAPI(t *testing.T) {
	extractor := models.ChannelDescriptor{Title: "Demo"}
	api := &models.ChannelAPIInfo{ID: "UC2"}

	got := CombineChannel(extractor, api)
	assert.Equal(t, "UC2", got.ChannelID)
}

type fakePartitioner struct {
	newIDs, knownIDs []string
}

func (f fakePartitioner) NewAndExistingVideoIDs(ids []string, channelID string) ([]string, []string, error) {
	return f.newIDs, f.knownIDs, nil
}

func TestPartitionNewVsKnown_DisjointUnion(t *testing.T) {
	ids := []string{"v1", "v2", "v3"}
	q := fakePartitioner{newIDs: []string{"v1", "v3"}, knownIDs: []string{"v2"}}

	newIDs, knownIDs, err := PartitionNewVsKnown(q, ids, "UC1")

	require.NoError(t, err)
	assert.ElementsMatch(t, append(append([]string{}, newIDs...), knownIDs...), ids)
}
