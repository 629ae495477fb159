package mission

import (
	"fmt"
	"strings"
	"time"

	"github.com/mungbws1031/leo-study/internal/phonics"
	"github.com/mungbws1031/leo-study/internal/profile"
)

// Prompt is the instruction payload for one generation call.
type Prompt struct {
	System    string
	User      string
	MaxTokens int
}

// Output budgets per category.
const (
	MaxTokensElementary = 1800
	MaxTokensPreschool  = 1200
	MaxTokensGeneral    = 1500
)

// Section orders per category. Prompts list them in this order.
var (
	ElementarySections = []string{"파닉스", "영단어", "수학", "짧은 글쓰기", "보너스"}
	PreschoolSections  = []string{"글자 놀이", "숫자·모양 놀이", "만들기", "가족 보너스 미션"}
	GeneralSections    = []string{"영어", "수학", "국어", "보너스"}
)

// TimeBudget is the total time phrase for a category.
func TimeBudget(c profile.Category) string {
	switch c {
	case profile.CategoryElementary:
		return "30~35분"
	case profile.CategoryPreschool:
		return "15분"
	default:
		return "30분"
	}
}

const toneRules = `[말투 규칙]
- 친구처럼 반말
- 이모지 풍부하게 사용
- 틀려도 괜찮다는 말 꼭 포함
`

const closingRule = "- 마지막에 짧은 응원 메시지"

const rewardRule = "- 작은 미션 하나가 끝날 때마다 게임 속 작은 보상(예: 다이아몬드 1개, 코인 10개)을 꼭 말해주기"

// BuildPrompt produces the system instructions and user request for a
// child on a given day. It does not special-case Sunday; callers check
// IsRestDay first.
func BuildPrompt(child profile.Child, level Level, sel ThemeSelector, now time.Time) (Prompt, error) {
	if !level.Valid() {
		return Prompt{}, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	var p Prompt
	switch child.Category {
	case profile.CategoryElementary:
		if err := sel.check(child); err != nil {
			return Prompt{}, err
		}
		p = Prompt{System: elementarySystem(child, level, sel, now), MaxTokens: MaxTokensElementary}
	case profile.CategoryPreschool:
		p = Prompt{System: preschoolSystem(child, level), MaxTokens: MaxTokensPreschool}
	default:
		if err := sel.check(child); err != nil {
			return Prompt{}, err
		}
		p = Prompt{System: generalSystem(child, level, sel), MaxTokens: MaxTokensGeneral}
	}
	p.User = userRequest(child, now)
	return p, nil
}

func persona(b *strings.Builder, child profile.Child, role string) {
	b.WriteString("당신은 '레오'입니다.\n")
	fmt.Fprintf(b, "%s 아이 '%s'의 %s예요.\n", child.Grade, child.Name, role)
	if child.AttentionSupport {
		b.WriteString("이 아이는 집중 시간이 짧아서 짧고 분명한 미션이 잘 맞아요.\n")
	}
	b.WriteString("\n")
}

func sectionOrder(sections []string) string {
	return "- 구성: " + strings.Join(sections, " -> ") + " 순서\n"
}

func elementarySystem(child profile.Child, level Level, sel ThemeSelector, now time.Time) string {
	pat := phonics.ForDate(now)

	var b strings.Builder
	persona(&b, child, "AI 학습 친구")
	b.WriteString("[과제 만들기 규칙]\n")
	fmt.Fprintf(&b, "- 총 %s 안에 끝낼 수 있는 양 (%s)\n", TimeBudget(child.Category), level.Guide())
	fmt.Fprintf(&b, "- %s\n", sel.wrapDirective(child))
	b.WriteString(sectionOrder(ElementarySections))
	fmt.Fprintf(&b, "- 파닉스: 이번 주 패턴 '%s' / 예시 단어: %s / 힌트: %s\n", pat.Name, pat.WordList(), pat.Hint)
	b.WriteString("- 영단어: 테마 관련 단어 3개 + 짧은 미션\n")
	b.WriteString("- 수학: 테마 스토리 속 계산 문제\n")
	b.WriteString("- 짧은 글쓰기: 딱 3줄 글쓰기 (부담 없게)\n")
	b.WriteString("- 보너스: 테마 속에서 할 수 있는 미션\n")
	if child.AttentionSupport {
		b.WriteString(rewardRule + "\n")
	}
	b.WriteString("- 각 단계는 ## 제목으로 나누기\n\n")
	b.WriteString(toneRules)
	b.WriteString(closingRule)
	return b.String()
}

func preschoolSystem(child profile.Child, level Level) string {
	var b strings.Builder
	persona(&b, child, "다정한 놀이 친구")
	b.WriteString("[놀이 과제 만들기 규칙]\n")
	fmt.Fprintf(&b, "- 총 %s 안에 끝낼 수 있는 양 (%s)\n", TimeBudget(child.Category), level.Guide())
	fmt.Fprintf(&b, "- 모든 활동을 '%s' 이야기로 포장하기\n", strings.Join(child.Themes, ", "))
	b.WriteString(sectionOrder(PreschoolSections))
	b.WriteString("- 글자 놀이: 한글 글자 1~2개 찾기, 따라 쓰기\n")
	b.WriteString("- 숫자·모양 놀이: 10까지 세기와 주변에서 모양 찾기\n")
	b.WriteString("- 만들기: 집에 있는 재료로 5분 만들기\n")
	b.WriteString("- 가족 보너스 미션: 엄마 아빠와 함께 하는 활동\n")
	b.WriteString("- 아주 쉬운 단어만 쓰고 문장은 짧게\n")
	if child.AttentionSupport {
		b.WriteString(rewardRule + "\n")
	}
	b.WriteString("- 각 단계는 ## 제목으로 나누기\n\n")
	b.WriteString(toneRules)
	b.WriteString("- 활동 하나마다 칭찬과 격려 한마디씩 꼭 넣기\n")
	b.WriteString(closingRule)
	return b.String()
}

func generalSystem(child profile.Child, level Level, sel ThemeSelector) string {
	var b strings.Builder
	persona(&b, child, "AI 학습 친구")
	b.WriteString("[과제 만들기 규칙]\n")
	fmt.Fprintf(&b, "- 총 %s 이내 끝낼 수 있는 양 (%s)\n", TimeBudget(child.Category), level.Guide())
	fmt.Fprintf(&b, "- %s\n", sel.wrapDirective(child))
	b.WriteString(sectionOrder(GeneralSections))
	b.WriteString("- 영어: 게임 관련 단어 3개 + 짧은 미션\n")
	b.WriteString("- 수학: 게임 스토리 속 계산 문제\n")
	b.WriteString("- 국어: 딱 3줄 글쓰기 (부담 없게)\n")
	b.WriteString("- 보너스: 게임하면서 할 수 있는 미션\n")
	if child.AttentionSupport {
		b.WriteString(rewardRule + "\n")
	}
	b.WriteString("\n")
	b.WriteString(toneRules)
	b.WriteString(closingRule)
	return b.String()
}

func userRequest(child profile.Child, now time.Time) string {
	return fmt.Sprintf("오늘은 %s %s이야! %s 위한 오늘의 과제 만들어줘!",
		now.Format("01월 02일"), DayTheme(now), ObjectName(child.Name))
}
