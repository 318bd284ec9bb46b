package simstore

import "github.com/agentdeck/agentdeck/console-gateway/pkg/models"

// seed loads the demo dataset: the same smart-home plugins, agents, LLM
// catalog, and historical conversations the console ships with. Sessions
// start empty — the historical conversations predate the session registry
// and are reachable through History only.
func (s *Store) seed() {
	s.plugins = []models.Plugin{
		{
			ID:          "plugin-001-led",
			Name:        "智能灯光控制",
			Identifier:  "led_controller",
			Description: "用于开启、关闭和调整智能LED灯的亮度或颜色。",
			Status:      models.PluginStatusEnabled,
			IsEnabled:   true,
			AuthType:    models.AuthTypeAPIKey,
			AuthConfig:  map[string]any{"apiKey": "demo-key"},
			OpenAPISpec: map[string]any{
				"openapi": "3.0.0",
				"info":    map[string]any{"title": "LED Control API"},
				"paths": map[string]any{
					"/light/on":  map[string]any{},
					"/light/off": map[string]any{},
				},
			},
			UserID:     "user-002-home",
			CreateTime: "2025-11-15T10:00:00",
			UpdateTime: "2025-11-15T10:00:00",
		},
		{
			ID:          "plugin-002-temp",
			Name:        "室内温度查询",
			Identifier:  "temperature_sensor",
			Description: "获取当前房间的实时温度和湿度数据。",
			Status:      models.PluginStatusEnabled,
			IsEnabled:   true,
			AuthType:    models.AuthTypeNone,
			AuthConfig:  map[string]any{},
			OpenAPISpec: map[string]any{
				"openapi": "3.0.0",
				"info":    map[string]any{"title": "Temperature API"},
				"paths": map[string]any{
					"/sensor/current_temp": map[string]any{},
				},
			},
			UserID:     "user-002-home",
			CreateTime: "2025-11-15T11:30:00",
			UpdateTime: "2025-11-15T11:30:00",
		},
		{
			ID:          "plugin-003-calendar",
			Name:        "家庭日程提醒",
			Identifier:  "family_calendar",
			Description: "用于查询和添加家庭共享日历事件。",
			Status:      models.PluginStatusDisabled,
			IsEnabled:   false,
			AuthType:    models.AuthTypeOAuth,
			AuthConfig:  map[string]any{},
			OpenAPISpec: map[string]any{
				"openapi": "3.0.0",
				"info":    map[string]any{"title": "Calendar API"},
				"paths": map[string]any{
					"/events": map[string]any{},
				},
			},
			UserID:     "user-004-dev",
			CreateTime: "2025-11-18T14:00:00",
			UpdateTime: "2025-11-18T14:00:00",
		},
	}

	s.agents = []models.Agent{
		{
			ID:             "agent-001-smarthome",
			Name:           "智能家居助理",
			Description:    "你可以控制家里的LED灯，查询室内温度，并能回答关于设备文档的问题。",
			Prompt:         "你是一个友好的智能家居助理，请优先使用插件执行操作，如果用户提问关于设备的问题，请参考知识库。",
			PromptTemplate: "你是一个友好的智能家居助理，请优先使用插件执行操作，如果用户提问关于设备的问题，请参考知识库。",
			Status:         models.AgentStatusPublished,
			ModelConfig:    map[string]any{"model": "gpt-4-turbo", "temperature": 0.2},
			UserID:         "user-002-home",
			WorkflowID:     "wf-001-home-ctrl",
			KbIDs:          []string{"kb-001-dev", "kb-002-faq"},
			ToolsConfig:    []string{"plugin-001-led", "plugin-002-temp"},
			CreateTime:     "2025-11-22T10:00:00",
			UpdateTime:     "2025-11-22T10:00:00",
		},
		{
			ID:             "agent-002-scheduler",
			Name:           "日程管理Agent",
			Description:    "专门用于处理家庭日程、提醒和日历查询。",
			Prompt:         "你是一个日程管理专家，请利用日历插件帮助用户安排生活。",
			PromptTemplate: "你是一个日程管理专家，请利用日历插件帮助用户安排生活。",
			Status:         models.AgentStatusDraft,
			ModelConfig:    map[string]any{"model": "gpt-3.5-turbo", "temperature": 0.5},
			UserID:         "user-002-home",
			KbIDs:          []string{},
			ToolsConfig:    []string{"plugin-003-calendar"},
			CreateTime:     "2025-11-23T09:30:00",
			UpdateTime:     "2025-11-23T09:30:00",
		},
	}

	s.llmProviders = []models.LlmProvider{
		{
			ID:             "provider-001-qwen",
			Code:           "qwen",
			Name:           "通义千问",
			Title:          "通义千问",
			Description:    "阿里云通义千问（模型服务平台百炼）",
			ApplyURL:       "https://dashscope.console.aliyun.com/",
			DocURL:         "https://help.aliyun.com/zh/model-studio/qwen-api-reference",
			DefaultAPIBase: "https://dashscope.aliyuncs.com/compatible-mode/v1",
			HasFreeQuota:   true,
			TagType:        "primary",
			Country:        "cn",
			SortOrder:      1,
			IsActive:       true,
			CreatedAt:      "2025-11-24T00:00:00",
			UpdatedAt:      "2025-11-24T00:00:00",
		},
		{
			ID:             "provider-002-doubao",
			Code:           "doubao",
			Name:           "豆包",
			Title:          "豆包",
			Description:    "火山引擎豆包（字节跳动）",
			ApplyURL:       "https://console.volcengine.com/ark",
			DocURL:         "https://www.volcengine.com/docs/82379/1330310",
			DefaultAPIBase: "https://ark.cn-beijing.volces.com/api/v3",
			HasFreeQuota:   true,
			TagType:        "success",
			Country:        "cn",
			SortOrder:      10,
			IsActive:       true,
			CreatedAt:      "2025-11-24T00:00:00",
			UpdatedAt:      "2025-11-24T00:00:00",
		},
		{
			ID:             "provider-003-openai",
			Code:           "openai",
			Name:           "OpenAI",
			Title:          "OpenAI GPT系列",
			Description:    "OpenAI 提供的 GPT 系列大语言模型，包括 GPT-3.5、GPT-4 等，业界领先的对话和生成能力。",
			ApplyURL:       "https://platform.openai.com/",
			DocURL:         "https://platform.openai.com/docs/api-reference",
			DefaultAPIBase: "https://api.openai.com/v1",
			HasFreeQuota:   false,
			TagType:        "info",
			Country:        "us",
			SortOrder:      20,
			IsActive:       true,
			CreatedAt:      "2025-11-24T00:00:00",
			UpdatedAt:      "2025-11-24T00:00:00",
		},
	}

	s.llmModels = []models.LlmModel{
		seedModel("model-001-qwen-turbo", "qwen-turbo", "通义千问-Turbo", "qwen",
			"https://dashscope.aliyuncs.com/compatible-mode/v1", 8192, 0.90,
			"阿里云通义千问大语言模型，性能强劲，响应快速，适合对话场景", true, 1),
		seedModel("model-002-qwen-plus", "qwen-plus", "通义千问-Plus", "qwen",
			"https://dashscope.aliyuncs.com/compatible-mode/v1", 32768, 0.90,
			"阿里云通义千问Plus版本，更强大的理解和生成能力", false, 2),
		seedModel("model-003-qwen-max", "qwen-max", "通义千问-Max", "qwen",
			"https://dashscope.aliyuncs.com/compatible-mode/v1", 8192, 0.90,
			"阿里云通义千问Max版本，最强理解能力，适合复杂任务", false, 3),
		seedModel("model-004-doubao-pro", "doubao-pro-32k", "豆包-Pro-32k", "doubao",
			"https://ark.cn-beijing.volces.com/api/v3", 32768, 0.90,
			"字节跳动豆包Pro版本，支持32k上下文，适合长文本处理", false, 10),
		seedModel("model-005-gpt35-turbo", "gpt-3.5-turbo", "GPT-3.5 Turbo", "openai",
			"https://api.openai.com/v1", 4096, 1.00,
			"OpenAI GPT-3.5 Turbo 模型，快速高效，性价比高", false, 20),
		seedModel("model-006-gpt4", "gpt-4", "GPT-4", "openai",
			"https://api.openai.com/v1", 8192, 1.00,
			"OpenAI GPT-4 模型，更强大的推理和理解能力", false, 21),
	}

	s.turns = map[string][]models.ConversationTurn{
		"sess-home-001": {
			seedTurn("conv-001", "sess-home-001", "帮我把客厅的灯打开。",
				"好的，已调用 [智能灯光控制] 插件，客厅灯已开启。", 50, 30, 80, "2025-11-23T11:00:00"),
			seedTurn("conv-002", "sess-home-001", "现在房间里温度是多少？",
				"正在查询... [室内温度查询] 插件返回：当前室内温度是26.5°C，湿度55%。", 65, 35, 100, "2025-11-23T11:01:30"),
		},
		"sess-home-002": {
			seedTurn("conv-003", "sess-home-002", "LED灯的手册在哪里？",
				"根据知识库[智能设备开发文档]，LED灯的手册是 \"LED_Manual.pdf\"，请查阅。", 80, 40, 120, "2025-11-24T10:00:00"),
		},
		"sess-home-003": {
			seedTurn("conv-004", "sess-home-003", "怎么给设备排除故障？",
				"请参考知识库 [常见问题解答] 中的 \"Troubleshooting.md\"，里面提供了详细的故障排除步骤。", 90, 45, 135, "2025-11-24T11:00:00"),
			seedTurn("conv-005", "sess-home-003", "把卧室灯调成红色。",
				"已调用 [智能灯光控制] 插件，卧室灯颜色已调整为红色。", 70, 35, 105, "2025-11-24T11:01:30"),
		},
	}
}

func seedModel(id, name, displayName, provider, apiBase string, maxTokens int, topP float64, description string, isDefault bool, sortOrder int) models.LlmModel {
	return models.LlmModel{
		ID:          id,
		Name:        name,
		DisplayName: displayName,
		Provider:    provider,
		ModelType:   "chat",
		APIBase:     apiBase,
		APIKey:      "YOUR_API_KEY_HERE",
		MaxTokens:   maxTokens,
		Temperature: 0.70,
		TopP:        topP,
		Description: description,
		IsActive:    true,
		IsDefault:   isDefault,
		IsSystem:    true,
		SortOrder:   sortOrder,
		CreatedAt:   "2025-11-24T00:00:00",
		UpdatedAt:   "2025-11-24T00:00:00",
	}
}

func seedTurn(id, sessionID, query, answer string, promptTokens, completionTokens, totalTokens int, createTime string) models.ConversationTurn {
	return models.ConversationTurn{
		ID:        id,
		SessionID: sessionID,
		AgentID:   "agent-001-smarthome",
		UserID:    defaultUserID,
		Query:     query,
		Answer:    answer,
		Metadata: &models.ConversationMetadata{
			LlmModelID:       defaultLlmModelID,
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      totalTokens,
		},
		ConversationType: models.TurnTypeChat,
		CreateTime:       createTime,
	}
}
