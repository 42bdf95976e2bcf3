package scheduler

import (
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"

	"github.com/spandan-mozumder/solfund/internal/config"
	"github.com/spandan-mozumder/solfund/internal/ledger"
	"github.com/spandan-mozumder/solfund/internal/logger"
	"github.com/spandan-mozumder/solfund/internal/model"
)

// ReconcileJob 托管对账任务
// 逐个活动校验：账面余额 == 累计捐赠 - 已记录提现总额，且台账实际持仓覆盖账面余额加押金
// 只告警不修账，漂移意味着有操作绕过了正常入口
type ReconcileJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewReconcileJob 创建托管对账任务
func NewReconcileJob(db *gorm.DB, cfg *config.Config) *ReconcileJob {
	return &ReconcileJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *ReconcileJob) GetName() string {
	return "custody_reconciler"
}

// GetSchedule 获取调度配置
func (j *ReconcileJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute 执行任务
func (j *ReconcileJob) Execute() {
	logger.Info("Starting custody reconciliation")

	var campaigns []model.CampaignModel
	if err := j.db.Find(&campaigns).Error; err != nil {
		logger.Error("Failed to fetch campaigns: %v", err)
		return
	}

	pool, err := ants.NewPool(j.config.Scheduler.PoolSize)
	if err != nil {
		logger.Error("Failed to create reconcile pool: %v", err)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var drifted int64
	var mu sync.Mutex

	for i := range campaigns {
		campaign := campaigns[i]
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if !j.reconcileCampaign(&campaign) {
				mu.Lock()
				drifted++
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			logger.Error("Failed to submit reconcile task for campaign %d: %v", campaign.Cid, submitErr)
		}
	}
	wg.Wait()

	if drifted > 0 {
		logger.Error("Custody reconciliation found %d campaign(s) with drift", drifted)
	} else {
		logger.Info("Custody reconciliation completed, %d campaigns clean", len(campaigns))
	}
}

// reconcileCampaign 校验单个活动，干净返回 true
func (j *ReconcileJob) reconcileCampaign(campaign *model.CampaignModel) bool {
	clean := true

	var withdrawn uint64
	if err := j.db.Model(&model.TransactionModel{}).
		Where("cid = ? AND credited = ?", campaign.Cid, false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&withdrawn).Error; err != nil {
		logger.Error("Failed to sum withdrawals for campaign %d: %v", campaign.Cid, err)
		return false
	}

	if campaign.Balance != campaign.AmountRaised-withdrawn {
		logger.Error("Campaign %d balance drift: balance=%d raised=%d withdrawn=%d",
			campaign.Cid, campaign.Balance, campaign.AmountRaised, withdrawn)
		clean = false
	}

	held, err := ledger.Balance(j.db, campaign.Address)
	if err != nil {
		logger.Error("Failed to read ledger balance for campaign %d: %v", campaign.Cid, err)
		return false
	}

	if held < campaign.Balance+j.config.Ledger.CampaignRent {
		logger.Error("Campaign %d custody drift: held=%d balance=%d rent=%d",
			campaign.Cid, held, campaign.Balance, j.config.Ledger.CampaignRent)
		clean = false
	}

	return clean
}
