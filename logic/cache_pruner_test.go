package logic_test

import (
	"context"
	"fmt"
	"pachli/dal"
	"pachli/logic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CachePruner_Keeps_Newest_Per_Account(t *testing.T) {

	ctrl, h := setupLogicHarness(t)
	defer ctrl.Finish()

	h.cfg.TimelineKeepMax = 3
	first := insertAccount(t, h, "1", "tok1", true)
	second := insertAccount(t, h, "2", "tok2", false)

	author := makeAccount("100", "carol")
	var ids []string
	for i := 10; i > 0; i-- {
		ids = append(ids, fmt.Sprintf("%d", i))
	}
	assert.Nil(t, dal.UpsertStatuses(h.repo, first, makeStatuses(author, ids...)))
	assert.Nil(t, dal.UpsertStatuses(h.repo, second, makeStatuses(author, "2", "1")))

	h.mockMetrics.EXPECT().CachePruned()
	h.mockMetrics.EXPECT().CachedStatusCount(5)

	cp := logic.NewCachePruner(h.cfg, h.mockLogger, h.repo, h.mockMetrics)
	assert.Nil(t, cp.PruneNow(context.Background()))

	assert.Equal(t, []string{"10", "9", "8"}, cachedIds(t, h, first))
	assert.Equal(t, []string{"2", "1"}, cachedIds(t, h, second))
}

func Test_CachePruner_Start_Stop(t *testing.T) {

	ctrl, h := setupLogicHarness(t)
	defer ctrl.Finish()

	h.cfg.PruneIntervalMin = 60
	cp := logic.NewCachePruner(h.cfg, h.mockLogger, h.repo, h.mockMetrics)
	cp.Start()
	cp.Start()
	cp.Stop()
	cp.Stop()
}
