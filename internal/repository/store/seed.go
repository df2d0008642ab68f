package store

import (
	"encoding/json"
	"fmt"

	"go-resume-backend/internal/domain"
)

// DefaultResumeConfig matches the layout a freshly created resume starts with.
var DefaultResumeConfig = domain.ResumeConfig{
	ThemeColor: "#000000",
	Template:   "modern",
	Language:   "zh",
	Layout: domain.LayoutConfig{
		LineHeight:           1.5,
		BaseFontSize:         14,
		TitleFontSize:        24,
		SectionTitleFontSize: 18,
		PageMargin:           32,
		SectionMargin:        24,
		ParagraphMargin:      12,
	},
}

func mustJSON(v any) json.RawMessage {
	blob, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return blob
}

func defaultSections() []domain.ResumeSection {
	return []domain.ResumeSection{
		{
			ID:        "basic",
			Type:      domain.SectionBasic,
			Title:     "基本信息",
			IsVisible: true,
			Content: mustJSON(map[string]string{
				"name":     "张三",
				"title":    "高级前端工程师",
				"email":    "zhangsan@example.com",
				"phone":    "13800138000",
				"location": "北京市朝阳区",
				"website":  "https://zhangsan.dev",
				"avatar":   "",
			}),
		},
		{
			ID:        "skills",
			Type:      domain.SectionSkills,
			Title:     "专业技能",
			IsVisible: true,
			Content: mustJSON(`<ul>
<li>前端框架：熟悉 React、Vue.js，熟悉 Next.js、Nuxt.js 等 SSR 框架</li>
<li>开发语言：TypeScript、JavaScript(ES6+)、HTML5、CSS3</li>
<li>状态管理：Redux、Vuex、Zustand、Jotai、React Query</li>
<li>工程化工具：Webpack、Vite、Rollup、Babel、ESLint</li>
</ul>`),
		},
		{
			ID:        "experience",
			Type:      domain.SectionExperience,
			Title:     "工作经历",
			IsVisible: true,
			Content: mustJSON(`<p><strong>抖音创作者中台 - 前端负责人</strong> (2022/06 - 2023/12)</p>
<ul>
<li>基于 React 开发的创作者数据分析和内容管理平台，服务百万级创作者群体</li>
<li>包含数据分析、内容管理、收益管理等多个子系统</li>
<li>使用 Redux 进行状态管理，实现复杂数据流的高效处理</li>
</ul>`),
		},
		{
			ID:        "project",
			Type:      domain.SectionProject,
			Title:     "项目经历",
			IsVisible: true,
			Content: mustJSON(`<p><strong>微信小程序开发者工具 - 核心开发者</strong> (2020/03 - 2021/06)</p>
<ul>
<li>为开发者提供小程序开发、调试和发布的一站式解决方案</li>
<li>基于 Electron 构建的跨平台桌面应用</li>
</ul>`),
		},
		{
			ID:        "education",
			Type:      domain.SectionEducation,
			Title:     "教育经历",
			IsVisible: true,
			Content: mustJSON(`<p><strong>北京大学 - 计算机科学与技术</strong> (2016/09 - 2020/06)</p>
<p>本科 | 学士学位</p>`),
		},
	}
}

// NewDefaultResume builds a resume with the default config and seed sections.
func NewDefaultResume(id, title, date string) domain.Resume {
	if title == "" {
		title = fmt.Sprintf("我的简历 %s", id)
	}
	return domain.Resume{
		ID:       id,
		Title:    title,
		Date:     date,
		Config:   DefaultResumeConfig,
		Sections: defaultSections(),
	}
}
