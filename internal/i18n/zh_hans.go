package i18n

import "github.com/conn-castle/topic-manager/internal/messages"

var zhHans = map[string]string{
	messages.ListHeaderState:       "状态",
	messages.ListHeaderName:        "尝鲜分支",
	messages.ListHeaderDate:        "更新时间",
	messages.ListHeaderPackages:    "软件包",
	messages.ListHeaderDescription: "描述",
	messages.ListStateEnabled:      "已启用",
	messages.ListStateAvailable:    "可用",
	messages.ListStateClosed:       "已关闭",
	messages.ListEmpty:             "当前没有可用的尝鲜分支。",
	messages.SelectTitle:           "选择要启用的尝鲜分支",
	messages.CommitNoChanges:       "尝鲜分支订阅没有变化。",
	messages.CommitDoneFmt:         "已更新软件源列表，共启用 %d 个尝鲜分支。\n",
	messages.DryRunHeader:          "试运行：软件源列表将发生如下变化。",
	messages.DryRunNoDiff:          "试运行：软件源列表已是最新。",
	messages.ClosedTopicWarnFmt:    "尝鲜分支 %s 已在上游关闭。\n",
	messages.RevertPlanHeader:      "以下软件包将回退到稳定版本：",
	messages.RevertNothing:         "没有需要回退的已安装软件包。",
	messages.RefreshNothingClosed:  "上游没有关闭任何尝鲜分支。",
	messages.NoHistoryWarning:      "未找到先前的尝鲜分支状态，无需关闭任何分支。",
}
