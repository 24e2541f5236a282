package quiz

// DefaultBank is the built-in stock knowledge question bank.
var DefaultBank = mustBank([]Question{
	{
		ID:             1,
		Text:           "A股市场的交易时间是？",
		Options:        []string{"9:00-15:00", "9:30-11:30 和 13:00-15:00", "9:00-12:00 和 13:00-16:00", "全天24小时"},
		CorrectAnswers: []int{1},
		Kind:           KindSingle,
	},
	{
		ID:             2,
		Text:           "在中国A股市场，股票价格上涨用什么颜色表示？",
		Options:        []string{"绿色", "红色", "蓝色", "黄色"},
		CorrectAnswers: []int{1},
		Kind:           KindSingle,
	},
	{
		ID:             3,
		Text:           "什么是市盈率(PE)？",
		Options:        []string{"股价/每股收益", "每股收益/股价", "市值/净资产", "净利润/营业收入"},
		CorrectAnswers: []int{0},
		Kind:           KindSingle,
	},
	{
		ID:             4,
		Text:           "A股市场的涨跌幅限制是多少？",
		Options:        []string{"5%", "10%", "20%", "无限制"},
		CorrectAnswers: []int{1},
		Kind:           KindSingle,
	},
	{
		ID:             5,
		Text:           "以下哪些属于技术分析指标？",
		Options:        []string{"MACD", "KDJ", "ROE", "RSI"},
		CorrectAnswers: []int{0, 1, 3},
		Kind:           KindMultiple,
	},
	{
		ID:             6,
		Text:           "上证指数的代码是？",
		Options:        []string{"000001", "399001", "000300", "399006"},
		CorrectAnswers: []int{0},
		Kind:           KindSingle,
	},
	{
		ID:             7,
		Text:           "什么是分红派息？",
		Options:        []string{"公司向股东分配利润", "股票价格上涨", "公司发行新股", "股票回购"},
		CorrectAnswers: []int{0},
		Kind:           KindSingle,
	},
	{
		ID:             8,
		Text:           "以下哪些是股票的基本面分析内容？",
		Options:        []string{"财务报表分析", "K线图分析", "行业分析", "公司管理层分析"},
		CorrectAnswers: []int{0, 2, 3},
		Kind:           KindMultiple,
	},
	{
		ID:             9,
		Text:           "T+1交易制度意味着？",
		Options:        []string{"当天买入的股票当天可卖", "当天买入的股票次日才能卖", "需要等待两天才能卖", "随时可以买卖"},
		CorrectAnswers: []int{1},
		Kind:           KindSingle,
	},
	{
		ID:             10,
		Text:           "创业板股票代码以什么开头？",
		Options:        []string{"600", "000", "300", "688"},
		CorrectAnswers: []int{2},
		Kind:           KindSingle,
	},
	{
		ID:             11,
		Text:           "科创板股票代码以什么开头？",
		Options:        []string{"600", "000", "300", "688"},
		CorrectAnswers: []int{3},
		Kind:           KindSingle,
	},
	{
		ID:             12,
		Text:           "什么是蓝筹股？",
		Options:        []string{"新上市的小公司股票", "业绩稳定、市值大的优质股票", "股价很低的股票", "亏损的公司股票"},
		CorrectAnswers: []int{1},
		Kind:           KindSingle,
	},
	{
		ID:             13,
		Text:           "以下哪些是影响股价的因素？",
		Options:        []string{"公司业绩", "宏观经济政策", "市场情绪", "行业发展趋势"},
		CorrectAnswers: []int{0, 1, 2, 3},
		Kind:           KindMultiple,
	},
	{
		ID:             14,
		Text:           "什么是换手率？",
		Options:        []string{"股票成交量占流通股本的比例", "股价涨跌幅度", "持股时间", "分红比例"},
		CorrectAnswers: []int{0},
		Kind:           KindSingle,
	},
	{
		ID:             15,
		Text:           "牛市是指？",
		Options:        []string{"股市整体下跌", "股市整体上涨", "股市横盘震荡", "股市关闭"},
		CorrectAnswers: []int{1},
		Kind:           KindSingle,
	},
	{
		ID:             16,
		Text:           "以下哪些属于A股主要指数？",
		Options:        []string{"上证指数", "深证成指", "纳斯达克指数", "沪深300"},
		CorrectAnswers: []int{0, 1, 3},
		Kind:           KindMultiple,
	},
	{
		ID:             17,
		Text:           "股票停牌是什么意思？",
		Options:        []string{"股票可以正常交易", "股票暂时不能交易", "股票退市", "股票涨停"},
		CorrectAnswers: []int{1},
		Kind:           KindSingle,
	},
	{
		ID:             18,
		Text:           "什么是净资产收益率(ROE)？",
		Options:        []string{"净利润/总资产", "净利润/净资产", "营业收入/总资产", "股价/每股收益"},
		CorrectAnswers: []int{1},
		Kind:           KindSingle,
	},
	{
		ID:             19,
		Text:           "以下哪些是分散投资风险的方法？",
		Options:        []string{"投资多只不同行业股票", "只投资一只股票", "配置不同类型资产", "分批建仓"},
		CorrectAnswers: []int{0, 2, 3},
		Kind:           KindMultiple,
	},
	{
		ID:             20,
		Text:           "什么是市净率(PB)？",
		Options:        []string{"股价/每股收益", "股价/每股净资产", "市值/净利润", "净资产/总资产"},
		CorrectAnswers: []int{1},
		Kind:           KindSingle,
	},
})

func mustBank(questions []Question) Bank {
	bank, err := NewBank(questions)
	if err != nil {
		panic(err)
	}
	return bank
}
