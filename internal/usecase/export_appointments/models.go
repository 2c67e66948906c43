package export_appointments

// ContentType MIME тип xlsx
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Response готовый файл выгрузки
type Response struct {
	FileName string
	Content  []byte
	Rows     int // Количество записей без заголовка и итога
}

const sheetName = "예약"

var headers = []string{"날짜", "시작", "종료", "고객", "전화번호", "서비스", "담당자", "상태", "금액", "메모"}

var statusLabels = map[string]string{
	"scheduled": "예약",
	"completed": "완료",
	"cancelled": "취소",
	"no-show":   "노쇼",
}
