package symbol

// companies is the static listing table in declaration order. It contains repeated codes;
// NewTable keeps the first occurrence of each.
var companies = []Company{
	// US tech
	{Code: "AAPL", Name: "苹果", NameEn: "Apple", Pinyin: "pingguo"},
	{Code: "MSFT", Name: "微软", NameEn: "Microsoft", Pinyin: "weiruan"},
	{Code: "GOOGL", Name: "谷歌", NameEn: "Google", Pinyin: "guge"},
	{Code: "GOOG", Name: "谷歌A", NameEn: "Google A", Pinyin: "gugea"},
	{Code: "AMZN", Name: "亚马逊", NameEn: "Amazon", Pinyin: "yamaxun"},
	{Code: "META", Name: "Meta", NameEn: "Meta", Pinyin: "meta"},
	{Code: "TSLA", Name: "特斯拉", NameEn: "Tesla", Pinyin: "tesila"},
	{Code: "NVDA", Name: "英伟达", NameEn: "NVIDIA", Pinyin: "yingweida"},
	{Code: "AMD", Name: "AMD", NameEn: "AMD", Pinyin: "amd"},
	{Code: "INTC", Name: "英特尔", NameEn: "Intel", Pinyin: "yingteer"},
	{Code: "NFLX", Name: "奈飞", NameEn: "Netflix", Pinyin: "naifei"},
	{Code: "DIS", Name: "迪士尼", NameEn: "Disney", Pinyin: "dishini"},
	{Code: "PYPL", Name: "PayPal", NameEn: "PayPal", Pinyin: "paypal"},
	{Code: "ADBE", Name: "Adobe", NameEn: "Adobe", Pinyin: "adobe"},
	{Code: "CRM", Name: "Salesforce", NameEn: "Salesforce", Pinyin: "salesforce"},
	{Code: "ORCL", Name: "甲骨文", NameEn: "Oracle", Pinyin: "jiaguwen"},
	{Code: "IBM", Name: "IBM", NameEn: "IBM", Pinyin: "ibm"},
	{Code: "CSCO", Name: "思科", NameEn: "Cisco", Pinyin: "sike"},

	// US financials
	{Code: "JPM", Name: "摩根大通", NameEn: "JPMorgan", Pinyin: "mogendatong"},
	{Code: "BAC", Name: "美国银行", NameEn: "Bank of America", Pinyin: "meiguoyinhang"},
	{Code: "WFC", Name: "富国银行", NameEn: "Wells Fargo", Pinyin: "fuguoyinhang"},
	{Code: "GS", Name: "高盛", NameEn: "Goldman Sachs", Pinyin: "gaosheng"},
	{Code: "MS", Name: "摩根士丹利", NameEn: "Morgan Stanley", Pinyin: "mogenshidanli"},
	{Code: "C", Name: "花旗", NameEn: "Citigroup", Pinyin: "huachi"},
	{Code: "BLK", Name: "贝莱德", NameEn: "BlackRock", Pinyin: "beilaide"},
	{Code: "V", Name: "Visa", NameEn: "Visa", Pinyin: "visa"},
	{Code: "MA", Name: "万事达", NameEn: "Mastercard", Pinyin: "wanshida"},

	// US consumer
	{Code: "KO", Name: "可口可乐", NameEn: "Coca-Cola", Pinyin: "kekoukele"},
	{Code: "PEP", Name: "百事可乐", NameEn: "PepsiCo", Pinyin: "baishikele"},
	{Code: "MCD", Name: "麦当劳", NameEn: "McDonalds", Pinyin: "maidanglao"},
	{Code: "SBUX", Name: "星巴克", NameEn: "Starbucks", Pinyin: "xingbake"},
	{Code: "NKE", Name: "耐克", NameEn: "Nike", Pinyin: "naike"},
	{Code: "LVMUY", Name: "LV", NameEn: "LVMH", Pinyin: "lv"},

	// US energy
	{Code: "XOM", Name: "埃克森美孚", NameEn: "Exxon Mobil", Pinyin: "aikesenmeifu"},
	{Code: "CVX", Name: "雪佛龙", NameEn: "Chevron", Pinyin: "xuefulong"},
	{Code: "COP", Name: "康菲石油", NameEn: "ConocoPhillips", Pinyin: "kangfeishiyou"},

	// US healthcare
	{Code: "JNJ", Name: "强生", NameEn: "Johnson & Johnson", Pinyin: "qiangsheng"},
	{Code: "PFE", Name: "辉瑞", NameEn: "Pfizer", Pinyin: "huirui"},
	{Code: "UNH", Name: "联合健康", NameEn: "UnitedHealth", Pinyin: "lianhejiankang"},
	{Code: "ABBV", Name: "艾伯维", NameEn: "AbbVie", Pinyin: "aibowei"},
	{Code: "MRK", Name: "默克", NameEn: "Merck", Pinyin: "moke"},
	{Code: "TMO", Name: "赛默飞", NameEn: "Thermo Fisher", Pinyin: "saifeifei"},

	// US industrials
	{Code: "CAT", Name: "卡特彼勒", NameEn: "Caterpillar", Pinyin: "katebila"},
	{Code: "BA", Name: "波音", NameEn: "Boeing", Pinyin: "boying"},
	{Code: "GE", Name: "通用电气", NameEn: "General Electric", Pinyin: "tongyongdianqi"},
	{Code: "HON", Name: "霍尼韦尔", NameEn: "Honeywell", Pinyin: "huoniweier"},
	{Code: "MMM", Name: "3M", NameEn: "3M", Pinyin: "3m"},

	// US-listed Chinese companies
	{Code: "BABA", Name: "阿里巴巴", NameEn: "Alibaba", Pinyin: "alibaba"},
	{Code: "JD", Name: "京东", NameEn: "JD.com", Pinyin: "jingdong"},
	{Code: "PDD", Name: "拼多多", NameEn: "PDD Holdings", Pinyin: "pinduoduo"},
	{Code: "BIDU", Name: "百度", NameEn: "Baidu", Pinyin: "baidu"},
	{Code: "NTES", Name: "网易", NameEn: "NetEase", Pinyin: "wangyi"},
	{Code: "TME", Name: "腾讯音乐", NameEn: "Tencent Music", Pinyin: "tengxunyinyue"},
	{Code: "NIO", Name: "蔚来", NameEn: "NIO", Pinyin: "weilai"},
	{Code: "XPEV", Name: "小鹏", NameEn: "XPeng", Pinyin: "xiaopeng"},
	{Code: "LI", Name: "理想", NameEn: "Li Auto", Pinyin: "lixiang"},
	{Code: "DIDI", Name: "滴滴", NameEn: "DiDi", Pinyin: "didi"},
	{Code: "BILI", Name: "哔哩哔哩", NameEn: "Bilibili", Pinyin: "bilibili"},
	{Code: "IQ", Name: "爱奇艺", NameEn: "iQIYI", Pinyin: "aiqiyi"},
	{Code: "VIPS", Name: "唯品会", NameEn: "Vipshop", Pinyin: "weipinhui"},
	{Code: "ZTO", Name: "中通快递", NameEn: "ZTO Express", Pinyin: "zhongtongkuaidi"},

	// Hong Kong
	{Code: "0700.HK", Name: "腾讯", NameEn: "Tencent", Pinyin: "tengxun"},
	{Code: "9988.HK", Name: "阿里巴巴", NameEn: "Alibaba", Pinyin: "alibaba"},
	{Code: "0941.HK", Name: "中国移动", NameEn: "China Mobile", Pinyin: "zhongguoyidong"},
	{Code: "0960.HK", Name: "龙源电力", NameEn: "Longyuan", Pinyin: "longyuandianli"},
	{Code: "2318.HK", Name: "中国平安", NameEn: "Ping An", Pinyin: "zhongguopingan"},
	{Code: "1299.HK", Name: "友邦保险", NameEn: "AIA", Pinyin: "youbangbaoxian"},
	{Code: "1398.HK", Name: "工商银行", NameEn: "ICBC", Pinyin: "gongshangyinhang"},
	{Code: "3988.HK", Name: "中国银行", NameEn: "Bank of China", Pinyin: "zhongguoyinhang"},
	{Code: "1288.HK", Name: "农业银行", NameEn: "Agricultural Bank", Pinyin: "nongyeyinhang"},
	{Code: "0939.HK", Name: "建设银行", NameEn: "CCB", Pinyin: "jiansheyinhang"},
	{Code: "2018.HK", Name: "AAC", NameEn: "AAC", Pinyin: "aac"},
	{Code: "2020.HK", Name: "安踏体育", NameEn: "ANTA", Pinyin: "anta"},
	{Code: "0241.HK", Name: "阿里健康", NameEn: "Ali Health", Pinyin: "alijiankang"},
	{Code: "02269.HK", Name: "药明生物", NameEn: "WuXi Biologics", Pinyin: "yaomingshengwu"},
	{Code: "02313.HK", Name: "申洲国际", NameEn: "Shenzhou", Pinyin: "shenzhouguoji"},
	{Code: "06699.HK", Name: "时代天使", NameEn: "Angelalign", Pinyin: "shidaitianshi"},
	{Code: "01024.HK", Name: "快手", NameEn: "Kuaishou", Pinyin: "kuaishou"},
	{Code: "09618.HK", Name: "京东集团", NameEn: "JD Group", Pinyin: "jingdongjituan"},
	{Code: "09988.HK", Name: "阿里巴巴", NameEn: "Alibaba", Pinyin: "alibaba"},
	{Code: "01024.HK", Name: "快手", NameEn: "Kuaishou", Pinyin: "kuaishou"},
	{Code: "09633.HK", Name: "农夫山泉", NameEn: "Nongfu Spring", Pinyin: "nongfushanquan"},
	{Code: "06618.HK", Name: "京东健康", NameEn: "JD Health", Pinyin: "jingdongjiankang"},
	{Code: "06030.HK", Name: "中信证券", NameEn: "CITIC", Pinyin: "zhongxinzhengquan"},
	{Code: "06886.HK", Name: "华泰证券", NameEn: "Huatai", Pinyin: "huataizhengquan"},
	{Code: "01767.HK", Name: "中金公司", NameEn: "CICC", Pinyin: "zhongjingongsi"},
	{Code: "02382.HK", Name: "舜宇光学", NameEn: "Sunny Optical", Pinyin: "shunyuguangxue"},
	{Code: "02382.HK", Name: "舜宇光学", NameEn: "Sunny Optical", Pinyin: "shunyuguangxue"},
	{Code: "02020.HK", Name: "安踏体育", NameEn: "ANTA", Pinyin: "anta"},
	{Code: "01138.HK", Name: "中远海控", NameEn: "COSCO", Pinyin: "zhongyuanhaikong"},
	{Code: "02628.HK", Name: "中国人寿", NameEn: "China Life", Pinyin: "zhongguorenshou"},
	{Code: "02601.HK", Name: "中国太保", NameEn: "CPIC", Pinyin: "zhongguotaibao"},
	{Code: "02318.HK", Name: "中国平安", NameEn: "Ping An", Pinyin: "zhongguopingan"},
	{Code: "01299.HK", Name: "友邦保险", NameEn: "AIA", Pinyin: "youbangbaoxian"},
	{Code: "01766.HK", Name: "中国中车", NameEn: "CRRC", Pinyin: "zhongguozhongche"},
	{Code: "01093.HK", Name: "石药集团", NameEn: "CSPC", Pinyin: "shiyaojituan"},
	{Code: "01088.HK", Name: "中国神华", NameEn: "China Shenhua", Pinyin: "zhongguoshenhua"},
	{Code: "01065.HK", Name: "天津创业环保", NameEn: "Tianjin Capital", Pinyin: "tianjinchuangye"},
	{Code: "01157.HK", Name: "中联重科", NameEn: "Zoomlion", Pinyin: "zhonglianzhongke"},
	{Code: "00941.HK", Name: "中国移动", NameEn: "China Mobile", Pinyin: "zhongguoyidong"},
	{Code: "00762.HK", Name: "中国联通", NameEn: "China Unicom", Pinyin: "zhongguoliantong"},
	{Code: "00728.HK", Name: "中国电信", NameEn: "China Telecom", Pinyin: "zhongguodianxin"},
	{Code: "00386.HK", Name: "中国石化", NameEn: "Sinopec", Pinyin: "zhongguoshihua"},
	{Code: "00388.HK", Name: "港交所", NameEn: "HKEX", Pinyin: "gangjiaosuo"},
	{Code: "00005.HK", Name: "汇丰控股", NameEn: "HSBC", Pinyin: "huifengkonggu"},
	{Code: "00011.HK", Name: "恒生银行", NameEn: "Hang Seng Bank", Pinyin: "hengshengyinhang"},
	{Code: "00083.HK", Name: "信和置业", NameEn: "Sino Land", Pinyin: "xinhezhiye"},
	{Code: "00101.HK", Name: "恒隆地产", NameEn: "Hang Lung", Pinyin: "henglongdichan"},
	{Code: "00175.HK", Name: "吉利汽车", NameEn: "Geely", Pinyin: "jiliqiche"},
	{Code: "02333.HK", Name: "长城汽车", NameEn: "Great Wall", Pinyin: "changchengqiche"},
	{Code: "02202.HK", Name: "万科企业", NameEn: "Vanke", Pinyin: "wankeqiye"},
	{Code: "00823.HK", Name: "领展房产基金", NameEn: "Link REIT", Pinyin: "lingzhanfangchan"},
	{Code: "00388.HK", Name: "港交所", NameEn: "HKEX", Pinyin: "gangjiaosuo"},
	{Code: "01997.HK", Name: "山东黄金", NameEn: "Shandong Gold", Pinyin: "shandonghuangjin"},
	{Code: "02899.HK", Name: "紫金矿业", NameEn: "Zijin Mining", Pinyin: "zijinkuangye"},
	{Code: "02007.HK", Name: "碧桂园", NameEn: "Country Garden", Pinyin: "biguiyuan"},
	{Code: "00381.HK", Name: "中远海能", NameEn: "COSC", Pinyin: "zhongyuanhaineng"},
	{Code: "00669.HK", Name: "技术发展", NameEn: "Techtronic", Pinyin: "jishufazhan"},
	{Code: "00688.HK", Name: "中国海外发展", NameEn: "China Overseas", Pinyin: "zhongguohaiwai"},
	{Code: "01109.HK", Name: "华润置地", NameEn: "CR Land", Pinyin: "huaranzhidi"},
	{Code: "01101.HK", Name: "华润啤酒", NameEn: "China Resources Beer", Pinyin: "huaranpijiu"},
	{Code: "00291.HK", Name: "华润啤酒", NameEn: "China Resources Beer", Pinyin: "huaranpijiu"},
	{Code: "00322.HK", Name: "康师傅", NameEn: "Master Kong", Pinyin: "kangshifu"},
	{Code: "00522.HK", Name: "ASM Pacific", NameEn: "ASMPT", Pinyin: "asmpacific"},
	{Code: "01810.HK", Name: "小米集团", NameEn: "Xiaomi", Pinyin: "xiaomi"},
	{Code: "00700.HK", Name: "腾讯控股", NameEn: "Tencent", Pinyin: "tengxunkonggu"},
	{Code: "03690.HK", Name: "美团", NameEn: "Meituan", Pinyin: "meituan"},
	{Code: "09961.HK", Name: "携程", NameEn: "Trip.com", Pinyin: "xiecheng"},
	{Code: "09888.HK", Name: "阿里巴巴", NameEn: "Alibaba", Pinyin: "alibaba"},
	{Code: "09618.HK", Name: "京东集团", NameEn: "JD.com", Pinyin: "jingdongjituan"},
	{Code: "01024.HK", Name: "快手", NameEn: "Kuaishou", Pinyin: "kuaishou"},
	{Code: "09633.HK", Name: "农夫山泉", NameEn: "Nongfu Spring", Pinyin: "nongfushanquan"},
	{Code: "06618.HK", Name: "京东健康", NameEn: "JD Health", Pinyin: "jingdongjiankang"},
	{Code: "02020.HK", Name: "安踏体育", NameEn: "ANTA", Pinyin: "anta"},
	{Code: "01767.HK", Name: "中国中车", NameEn: "CRRC", Pinyin: "zhongguozhongche"},
	{Code: "02313.HK", Name: "申洲国际", NameEn: "Shenzhou", Pinyin: "shenzhouguoji"},
	{Code: "02382.HK", Name: "舜宇光学", NameEn: "Sunny Optical", Pinyin: "shunyuguangxue"},
	{Code: "02269.HK", Name: "药明生物", NameEn: "WuXi Biologics", Pinyin: "yaomingshengwu"},
	{Code: "06030.HK", Name: "中信证券", NameEn: "CITIC", Pinyin: "zhongxinzhengquan"},
	{Code: "06886.HK", Name: "华泰证券", NameEn: "Huatai", Pinyin: "huataizhengquan"},
	{Code: "01766.HK", Name: "中国中车", NameEn: "CRRC", Pinyin: "zhongguozhongche"},
	{Code: "01093.HK", Name: "石药集团", NameEn: "CSPC", Pinyin: "shiyaojituan"},
	{Code: "01088.HK", Name: "中国神华", NameEn: "China Shenhua", Pinyin: "zhongguoshenhua"},
	{Code: "01157.HK", Name: "中联重科", NameEn: "Zoomlion", Pinyin: "zhonglianzhongke"},
	{Code: "00941.HK", Name: "中国移动", NameEn: "China Mobile", Pinyin: "zhongguoyidong"},
	{Code: "00762.HK", Name: "中国联通", NameEn: "China Unicom", Pinyin: "zhongguoliantong"},
	{Code: "00728.HK", Name: "中国电信", NameEn: "China Telecom", Pinyin: "zhongguodianxin"},
	{Code: "00386.HK", Name: "中国石化", NameEn: "Sinopec", Pinyin: "zhongguoshihua"},
	{Code: "00388.HK", Name: "港交所", NameEn: "HKEX", Pinyin: "gangjiaosuo"},
	{Code: "00005.HK", Name: "汇丰控股", NameEn: "HSBC", Pinyin: "huifengkonggu"},
	{Code: "00011.HK", Name: "恒生银行", NameEn: "Hang Seng Bank", Pinyin: "hengshengyinhang"},
	{Code: "00175.HK", Name: "吉利汽车", NameEn: "Geely", Pinyin: "jiliqiche"},
	{Code: "02333.HK", Name: "长城汽车", NameEn: "Great Wall", Pinyin: "changchengqiche"},
	{Code: "02202.HK", Name: "万科企业", NameEn: "Vanke", Pinyin: "wankeqiye"},
	{Code: "00823.HK", Name: "领展房产基金", NameEn: "Link REIT", Pinyin: "lingzhanfangchan"},
	{Code: "01997.HK", Name: "山东黄金", NameEn: "Shandong Gold", Pinyin: "shandonghuangjin"},
	{Code: "02899.HK", Name: "紫金矿业", NameEn: "Zijin Mining", Pinyin: "zijinkuangye"},
	{Code: "02007.HK", Name: "碧桂园", NameEn: "Country Garden", Pinyin: "biguiyuan"},
	{Code: "00381.HK", Name: "中远海能", NameEn: "COSC", Pinyin: "zhongyuanhaineng"},
	{Code: "00688.HK", Name: "中国海外发展", NameEn: "China Overseas", Pinyin: "zhongguohaiwai"},
	{Code: "01109.HK", Name: "华润置地", NameEn: "CR Land", Pinyin: "huaranzhidi"},
	{Code: "01101.HK", Name: "华润啤酒", NameEn: "China Resources Beer", Pinyin: "huaranpijiu"},
	{Code: "00322.HK", Name: "康师傅", NameEn: "Master Kong", Pinyin: "kangshifu"},
	{Code: "00522.HK", Name: "ASM Pacific", NameEn: "ASMPT", Pinyin: "asmpacific"},
	{Code: "01810.HK", Name: "小米集团", NameEn: "Xiaomi", Pinyin: "xiaomi"},
	{Code: "03690.HK", Name: "美团", NameEn: "Meituan", Pinyin: "meituan"},
	{Code: "09961.HK", Name: "携程", NameEn: "Trip.com", Pinyin: "xiecheng"},
}
