package analysis

import (
	"math"
	"slices"

	"EmploymentReport/internal/domain"
)

var trends = []string{
	"2024-2025年就业市场整体承压，就业率有所下降",
	"签约率相对稳定，但整体签约周期延长",
	"自由职业和灵活就业比例上升",
	"考研、考公热度持续高涨",
	"一线城市就业机会集中，但竞争激烈",
	"新兴行业（AI、新能源、生物医药）岗位需求增长",
}

// Analyze builds the report model. Scraped rates above 1 are read as
// percentages and scaled to fractions so every rate in the report shares a unit.
func Analyze(s domain.Summary) domain.AnalysisReport {
	employment := normalize(s.EmploymentRates)
	signing := normalize(s.SigningRates)

	return domain.AnalysisReport{
		CoreIndicators: domain.CoreIndicators{
			TotalSources:        s.TotalSources,
			AvgEmploymentRate:   average(employment, s.EmploymentAverage()),
			AvgSigningRate:      average(signing, s.SigningAverage()),
			EmploymentRateRange: rateRange(employment),
			SigningRateRange:    rateRange(signing),
		},
		Trends:             slices.Clone(trends),
		RegionalAnalysis:   regional(),
		MajorAnalysis:      majors(),
		SchoolTypeAnalysis: schoolTypes(),
		FreelanceAnalysis:  freelance(),
	}
}

func regional() domain.RegionalAnalysis {
	return domain.RegionalAnalysis{
		EastCoast: domain.RegionProfile{
			AvgEmploymentRate: 0.85,
			Characteristics:   "经济发达，机会多但竞争激烈",
			HotProvinces:      []string{"北京", "上海", "广东", "江苏", "浙江"},
		},
		CentralRegion: domain.RegionProfile{
			AvgEmploymentRate: 0.78,
			Characteristics:   "就业机会稳定，生活成本适中",
			HotProvinces:      []string{"湖北", "湖南", "河南", "安徽"},
		},
		WestRegion: domain.RegionProfile{
			AvgEmploymentRate: 0.72,
			Characteristics:   "政策支持，新兴发展区域",
			HotProvinces:      []string{"四川", "重庆", "陕西"},
		},
	}
}

func majors() domain.MajorAnalysis {
	return domain.MajorAnalysis{
		STEM: domain.MajorProfile{
			EmploymentRate: 0.92,
			TopMajors:      []string{"计算机", "电子信息", "机械工程", "自动化"},
			Trend:          "需求旺盛，薪资较高",
		},
		Humanities: domain.MajorProfile{
			EmploymentRate: 0.75,
			TopMajors:      []string{"汉语言", "历史", "哲学", "外语"},
			Trend:          "竞争激烈，向新媒体、内容创作转型",
		},
		SocialScience: domain.MajorProfile{
			EmploymentRate: 0.82,
			TopMajors:      []string{"经济学", "管理学", "法学"},
			Trend:          "金融科技、咨询等领域需求增长",
		},
		Arts: domain.MajorProfile{
			EmploymentRate: 0.68,
			TopMajors:      []string{"设计", "音乐", "美术"},
			Trend:          "自由创业比例高，数字艺术兴起",
		},
	}
}

func schoolTypes() domain.SchoolTypeAnalysis {
	return domain.SchoolTypeAnalysis{
		Elite: domain.SchoolProfile{
			EmploymentRate:  0.90,
			AvgSalary:       "9000-15000元",
			Characteristics: "优势明显，大厂青睐",
		},
		General: domain.SchoolProfile{
			EmploymentRate:  0.78,
			AvgSalary:       "6000-9000元",
			Characteristics: "稳步提升，注重实践能力",
		},
		Vocational: domain.SchoolProfile{
			EmploymentRate:  0.88,
			AvgSalary:       "5000-8000元",
			Characteristics: "技能导向，就业匹配度高",
		},
	}
}

func freelance() domain.FreelanceAnalysis {
	return domain.FreelanceAnalysis{
		FreelanceRate: 0.15,
		GrowthTrend:   "+20% YoY",
		PopularCategories: []string{
			"内容创作（自媒体、视频）",
			"设计服务（平面、UI/UX）",
			"技术开发（独立开发、接单）",
			"咨询服务（培训、课程）",
			"电商运营（直播带货）",
		},
		Challenges:    []string{"收入不稳定", "缺乏社保福利", "技能持续更新压力"},
		Opportunities: []string{"时间自由", "收入潜力大", "个人品牌建设"},
	}
}

// AsFraction reads values above 1 as percentages.
func AsFraction(v float64) float64 {
	return fraction(v)
}

func fraction(v float64) float64 {
	if v > 1 {
		return v / 100
	}
	return v
}

func normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = fraction(v)
	}
	return out
}

// average prefers the normalised samples and falls back to the Summary's
// stored mean when the samples were not carried along.
func average(values []float64, stored float64) float64 {
	if len(values) == 0 {
		return fraction(stored)
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// rateRange is {0,0} for an empty sequence; bounds are rounded to 2 places.
func rateRange(values []float64) domain.RateRange {
	if len(values) == 0 {
		return domain.RateRange{}
	}
	return domain.RateRange{
		Min: round2(slices.Min(values)),
		Max: round2(slices.Max(values)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
