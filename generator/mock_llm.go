package generator

import (
	"context"
	"strings"
)

const (
	mockIntro = `본 문서는 [주제]에 대해 체계적으로 분석하고 논의하기 위해 작성되었다. 
현대 사회에서 [주제]는 중요한 의미를 갖고 있으며, 이에 대한 깊이 있는 이해가 필요하다. 
이 글에서는 [주제]의 배경, 주요 내용, 그리고 향후 전망을 다룬다.`

	mockBody = `[주제]에 대한 분석을 시작하자면, 먼저 핵심 개념을 명확히 정의할 필요가 있다. 
[주제]는 다음과 같은 특징을 가진다: 첫째, [특징1]. 둘째, [특징2]. 셋째, [특징3]. 
이러한 특징들은 서로 밀접하게 연관되어 있으며, 종합적으로 이해해야 한다. 
또한, [주제]와 관련된 다양한 관점들이 존재한다. 한 관점에서는 [관점1]을 강조하는 반면, 
다른 관점에서는 [관점2]를 중시한다. 이러한 다양한 접근 방식은 [주제]의 복잡성을 보여준다.`

	mockConclusion = `이상의 논의를 통해 [주제]에 대한 종합적인 이해를 도모할 수 있었다. 
주요 내용을 요약하면 다음과 같다: [요약1], [요약2], [요약3]. 
앞으로 [주제]는 더욱 발전할 것으로 예상되며, 지속적인 관심과 연구가 필요하다.`

	mockEchoRunes = 100
)

// MockLLM is a deterministic stand-in that never calls an external model.
// The reply is picked by keywords found anywhere in the prompt.
type MockLLM struct{}

func (MockLLM) Generate(_ context.Context, prompt string, _ float64, _ int) (string, error) {
	switch {
	case strings.Contains(prompt, "서론") || strings.Contains(prompt, "도입"):
		return mockIntro, nil
	case strings.Contains(prompt, "본론") || strings.Contains(prompt, "분석"):
		return mockBody, nil
	case strings.Contains(prompt, "결론"):
		return mockConclusion, nil
	}
	return "[주제]에 대한 내용: " + truncateRunes(prompt, mockEchoRunes) + "... (실제 LLM 연동 시 더 상세한 내용이 생성됩니다.)", nil
}
