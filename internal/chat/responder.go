package chat

import (
	"strings"
)

type rule struct {
	keyword string
	reply   string
}

// rules is scanned top to bottom and the first keyword contained in the
// lower-cased message wins. Matching is plain substring containment, so
// the declaration order is the tie-breaker and must not be reshuffled.
var rules = []rule{
	{"записаться", "Вы можете записаться через форму на сайте в разделе \"Запись\" или по телефону +7 (999) 123-45-67"},
	{"запись", "Для записи на ТО перейдите в раздел \"Запись\" на сайте или позвоните нам +7 (999) 123-45-67"},
	{"акци", "Наши текущие акции:\n• Скидка 20% на замену масла\n• Бесплатная диагностика при комплексном ТО\n• Скидка 10% на запчасти при заказе услуг"},
	{"скидк", "Действующие скидки:\n• 20% на замену масла\n• 10% на запчасти\n• Бесплатная диагностика"},
	{"цена", "Стоимость услуг:\n• Замена масла - от 1500₽\n• Диагностика - от 1000₽\n• Ремонт тормозов - от 2000₽\n• Ремонт подвески - от 2500₽\n• Заправка кондиционера - от 1800₽\n• Комплексное ТО - от 5000₽"},
	{"стоимост", "Цены на услуги:\n• Замена масла - от 1500₽\n• Диагностика - от 1000₽\n• ТО - от 5000₽"},
	{"время", "Мы работаем:\n• Пн-Пт: 9:00 - 20:00\n• Сб: 10:00 - 18:00\n• Вс: 10:00 - 16:00"},
	{"график", "Режим работы:\nПн-Пт 9:00-20:00\nСб-Вс 10:00-18:00"},
	{"адрес", "Наш адрес: г. Москва, ул. Автомобильная, д. 10 (метро \"Автозаводская\")"},
	{"телефон", "Наш телефон: +7 (999) 123-45-67\nWhatsApp/Telegram: +7 (999) 123-45-67"},
	{"контакт", "Связаться с нами:\n• Телефон: +7 (999) 123-45-67\n• Email: info@autoservice.ru\n• Адрес: ул. Автомобильная, д. 10"},
	{"спасибо", "Пожалуйста! Обращайтесь еще 😊 Рады помочь!"},
	{"пасиб", "Всегда пожалуйста! 😊"},
	{"благодар", "Спасибо за добрые слова! Будем рады видеть вас снова!"},
	{"привет", "Здравствуйте! Чем могу помочь?"},
	{"здравствуй", "Добрый день! Чем я могу вам помочь?"},
	{"добрый", "Здравствуйте! Какой у вас вопрос?"},
	{"работа", "Режим работы:\nПн-Пт: 9:00 - 20:00\nСб-Вс: 10:00 - 18:00"},
	{"масло", "Замена масла от 1500₽. Используем масла ведущих производителей: Mobil, Shell, Castrol. Работа занимает около 1 часа."},
	{"диагностик", "Компьютерная диагностика от 1000₽. Проверка всех систем автомобиля, выявление ошибок, рекомендации по ремонту."},
	{"тормоз", "Ремонт тормозной системы от 2000₽:\n• Замена колодок\n• Замена дисков\n• Прокачка тормозов\n• Замена жидкости"},
	{"подвеск", "Ремонт подвески от 2500₽:\n• Замена амортизаторов\n• Замена шаровых опор\n• Замена сайлентблоков\n• Сход-развал"},
	{"кондиционер", "Заправка кондиционера от 1800₽. Включает диагностику системы, проверку на утечки, заправку фреоном."},
	{"то", "Комплексное ТО от 5000₽:\n• Замена масла и фильтров\n• Проверка всех систем\n• Диагностика\n• Рекомендации"},
	{"запчасти", "В нашем каталоге более 5000 запчастей в наличии. Оригинальные и качественные аналоги. Доставка по Москбесплатно при заказе от 3000₽."},
	{"доставка", "Доставка запчастей:\n• По Москве - бесплатно от 3000₽\n• Доставка курьером - 300₽\n• Самовывоз из магазина"},
	{"гарантия", "На все работы гарантия 1 год. На запчасти - гарантия производителя (от 6 месяцев до 2 лет)."},
	{"оплат", "Способы оплаты:\n• Наличные\n• Банковская карта\n• Перевод на карту\n• Безналичный расчет для юрлиц"},
	{"выходн", "Мы работаем без выходных! В субботу и воскресенье с 10:00 до 18:00"},
}

// Respond returns the canned reply for the first matching keyword, or
// ("", false) when the message should be left for a human operator.
func Respond(message string) (string, bool) {
	msg := strings.ToLower(message)
	for _, r := range rules {
		if strings.Contains(msg, r.keyword) {
			return r.reply, true
		}
	}
	return "", false
}
